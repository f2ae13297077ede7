package file

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/storage"
	"github.com/ZidiEya/holbertonschool-files-manager/models"
)

// memRepo is an insertion-ordered in-memory MetadataRepository.
type memRepo struct {
	files []models.File
}

func (r *memRepo) Insert(_ context.Context, f *models.File) error {
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	r.files = append(r.files, *f)
	return nil
}

func (r *memRepo) FindOne(_ context.Context, filter Filter) (*models.File, error) {
	for i := range r.files {
		if matches(&r.files[i], filter) {
			f := r.files[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindPage(_ context.Context, parentID string, page, size int) ([]models.File, error) {
	var under []models.File
	for _, f := range r.files {
		if f.ParentID == parentID {
			under = append(under, f)
		}
	}
	start := page * size
	if start >= len(under) {
		return []models.File{}, nil
	}
	end := start + size
	if end > len(under) {
		end = len(under)
	}
	return under[start:end], nil
}

func (r *memRepo) SetPublic(_ context.Context, id, userID string, public bool) (*models.File, error) {
	for i := range r.files {
		if r.files[i].ID == id && r.files[i].UserID == userID {
			r.files[i].IsPublic = public
			f := r.files[i]
			return &f, nil
		}
	}
	return nil, nil
}

func matches(f *models.File, filter Filter) bool {
	if filter.ID != "" && f.ID != filter.ID {
		return false
	}
	if filter.UserID != "" && f.UserID != filter.UserID {
		return false
	}
	if filter.ParentID != "" && f.ParentID != filter.ParentID {
		return false
	}
	return true
}

// memUsers is an in-memory UserFinder.
type memUsers map[string]*models.User

func (u memUsers) ByID(_ context.Context, id string) (*models.User, error) {
	return u[id], nil
}

// memStore is an in-memory ContentStore.
type memStore struct {
	blobs     map[string][]byte
	failWrite bool
	writes    int
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Write(data string) (string, error) {
	if m.failWrite {
		return "", errors.New("disk full")
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", err
	}
	m.writes++
	localPath := fmt.Sprintf("/mem/%d", m.writes)
	m.blobs[localPath] = decoded
	return localPath, nil
}

func (m *memStore) Read(localPath string) ([]byte, error) {
	blob, ok := m.blobs[localPath]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return blob, nil
}
