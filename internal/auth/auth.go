package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/identity"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/queue"
	"github.com/ZidiEya/holbertonschool-files-manager/models"
)

// UserStore is the slice of the user repository the handlers need.
type UserStore interface {
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
}

// SessionManager issues and revokes opaque session tokens.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (string, error)
	Revoke(ctx context.Context, key string) error
}

// Handler serves registration, login, logout and the current-user endpoint.
type Handler struct {
	users    UserStore
	sessions SessionManager
	resolver *identity.Resolver
	queue    queue.Dispatcher
}

func NewHandler(users UserStore, sessions SessionManager, resolver *identity.Resolver, dispatcher queue.Dispatcher) *Handler {
	return &Handler{
		users:    users,
		sessions: sessions,
		resolver: resolver,
		queue:    dispatcher,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /users.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing password"})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.users.ByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already exist"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	user, err := h.users.Create(ctx, req.Email, string(hashed))
	if errors.Is(err, ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already exist"})
		return
	}
	if err != nil {
		// Compensation signal for the failed insert; no user id exists yet.
		if qErr := h.queue.EnqueueUserJob(ctx, queue.UserJob{}); qErr != nil {
			log.Printf("enqueue recovery job: %v", qErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	if err := h.queue.EnqueueUserJob(ctx, queue.UserJob{UserID: user.ID}); err != nil {
		log.Printf("enqueue welcome job for %s: %v", user.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

// Connect handles GET /connect: Basic credentials in, opaque session token out.
func (h *Handler) Connect(c *gin.Context) {
	email, password, ok := basicCredentials(c.GetHeader("Authorization"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.ByEmail(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	token, err := h.sessions.Issue(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Disconnect handles GET /disconnect, revoking the caller's session.
func (h *Handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()
	ident, err := h.resolver.FromRequest(ctx, c.Request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if ident.UserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.sessions.Revoke(ctx, ident.SessionKey); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me handles GET /users/me.
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	ident, err := h.resolver.FromRequest(ctx, c.Request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var user *models.User
	if ident.UserID != "" {
		user, err = h.users.ByID(ctx, ident.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email})
}

// basicCredentials decodes an "Authorization: Basic base64(email:password)"
// header.
func basicCredentials(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(decoded), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}
