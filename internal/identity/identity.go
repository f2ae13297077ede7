package identity

import (
	"context"
	"net/http"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/session"
)

// TokenHeader is the request header carrying the client's session token.
const TokenHeader = "X-Token"

// Identity is the caller resolved from a request token. A zero UserID means the
// caller is anonymous or the session is unknown; SessionKey is still populated
// whenever a token was supplied so the same session can be revoked.
type Identity struct {
	UserID     string
	SessionKey string
}

// SessionResolver is the slice of the session store the resolver needs.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) (string, error)
}

type Resolver struct {
	sessions SessionResolver
}

func NewResolver(sessions SessionResolver) *Resolver {
	return &Resolver{sessions: sessions}
}

// FromRequest extracts the caller identity from the request's X-Token header.
// A missing header yields a zero Identity, not an error.
func (r *Resolver) FromRequest(ctx context.Context, req *http.Request) (Identity, error) {
	token := req.Header.Get(TokenHeader)
	if token == "" {
		return Identity{}, nil
	}

	ident := Identity{SessionKey: session.Key(token)}
	userID, err := r.sessions.Resolve(ctx, ident.SessionKey)
	if err != nil {
		return ident, err
	}
	ident.UserID = userID
	return ident, nil
}
