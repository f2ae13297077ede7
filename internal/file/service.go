package file

import (
	"context"
	"errors"
	"log"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ZidiEya/holbertonschool-files-manager/internal/identity"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/queue"
	"github.com/ZidiEya/holbertonschool-files-manager/internal/storage"
	"github.com/ZidiEya/holbertonschool-files-manager/models"
)

// MetadataRepository is the slice of the metadata store the service depends on.
type MetadataRepository interface {
	Insert(ctx context.Context, f *models.File) error
	FindOne(ctx context.Context, filter Filter) (*models.File, error)
	FindPage(ctx context.Context, parentID string, page, size int) ([]models.File, error)
	SetPublic(ctx context.Context, id, userID string, public bool) (*models.File, error)
}

// UserFinder checks that an authenticated identity still names a real user.
type UserFinder interface {
	ByID(ctx context.Context, id string) (*models.User, error)
}

// ContentStore persists and serves raw file content.
type ContentStore interface {
	Write(data string) (string, error)
	Read(localPath string) ([]byte, error)
}

// CreateParams is the validated-on-entry upload request body.
type CreateParams struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// Response is the public projection of a stored record; it never exposes the
// local content path.
type Response struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID string `json:"parentId"`
}

// Service orchestrates validation, ownership and hierarchy checks across the
// metadata repository, content store and job dispatcher.
type Service struct {
	repo  MetadataRepository
	users UserFinder
	store ContentStore
	queue queue.Dispatcher
}

func NewService(repo MetadataRepository, users UserFinder, store ContentStore, dispatcher queue.Dispatcher) *Service {
	return &Service{
		repo:  repo,
		users: users,
		store: store,
		queue: dispatcher,
	}
}

// requireUser resolves the identity to an existing user or fails Unauthorized.
// Every authenticated operation runs this before anything else.
func (s *Service) requireUser(ctx context.Context, ident identity.Identity) (*models.User, error) {
	if !isValidID(ident.UserID) {
		return nil, ErrUnauthorized
	}
	user, err := s.users.ByID(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Create validates and stores a new file, folder or image for the caller.
// Content is written before metadata; a failed write on an image upload
// enqueues a degraded recovery job carrying only the user id.
func (s *Service) Create(ctx context.Context, ident identity.Identity, params CreateParams) (*Response, error) {
	user, err := s.requireUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	if err := s.validateCreate(ctx, &params); err != nil {
		return nil, err
	}

	record := &models.File{
		UserID:   user.ID,
		Name:     params.Name,
		Type:     params.Type,
		IsPublic: params.IsPublic,
		ParentID: params.ParentID,
	}

	if params.Type != models.TypeFolder {
		localPath, err := s.store.Write(params.Data)
		if err != nil {
			if params.Type == models.TypeImage {
				s.enqueueUserJob(ctx, queue.UserJob{UserID: user.ID})
			}
			return nil, ErrStorageFailure
		}
		record.LocalPath = localPath
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	if params.Type == models.TypeImage {
		s.enqueueFileJob(ctx, queue.FileJob{FileID: record.ID, UserID: record.UserID})
	}

	return project(record), nil
}

// Get returns the projection of a file owned by the caller. A file owned by
// someone else is indistinguishable from a missing one.
func (s *Service) Get(ctx context.Context, ident identity.Identity, fileID string) (*Response, error) {
	user, err := s.requireUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	if !isValidID(fileID) {
		return nil, ErrNotFound
	}
	record, err := s.repo.FindOne(ctx, Filter{ID: fileID, UserID: user.ID})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return project(record), nil
}

// List returns one page of projections under parentID. An invalid, unknown or
// non-folder parent yields an empty page rather than an error.
func (s *Service) List(ctx context.Context, ident identity.Identity, parentID string, page int) ([]Response, error) {
	if _, err := s.requireUser(ctx, ident); err != nil {
		return nil, err
	}

	if parentID == "" {
		parentID = models.RootParentID
	}
	if page < 0 {
		page = 0
	}

	if parentID != models.RootParentID {
		if !isValidID(parentID) {
			return []Response{}, nil
		}
		parent, err := s.repo.FindOne(ctx, Filter{ID: parentID})
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsFolder() {
			return []Response{}, nil
		}
	}

	records, err := s.repo.FindPage(ctx, parentID, page, PageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]Response, 0, len(records))
	for i := range records {
		responses = append(responses, *project(&records[i]))
	}
	return responses, nil
}

// SetVisibility publishes or unpublishes a file owned by the caller.
func (s *Service) SetVisibility(ctx context.Context, ident identity.Identity, fileID string, public bool) (*Response, error) {
	user, err := s.requireUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	if !isValidID(fileID) {
		return nil, ErrNotFound
	}
	record, err := s.repo.SetPublic(ctx, fileID, user.ID, public)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return project(record), nil
}

// Content returns the stored bytes of a file and the MIME type derived from
// its name. Ownership is required unless the file is public; the caller's
// identity may be anonymous.
func (s *Service) Content(ctx context.Context, ident identity.Identity, fileID string) ([]byte, string, error) {
	if !isValidID(fileID) {
		return nil, "", ErrNotFound
	}
	record, err := s.repo.FindOne(ctx, Filter{ID: fileID})
	if err != nil {
		return nil, "", err
	}
	if record == nil {
		return nil, "", ErrNotFound
	}

	if !record.IsPublic && (ident.UserID == "" || ident.UserID != record.UserID) {
		return nil, "", ErrNotFound
	}
	if record.IsFolder() {
		return nil, "", ErrFolderNoContent
	}

	data, err := s.store.Read(record.LocalPath)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, contentType(record.Name), nil
}

func (s *Service) validateCreate(ctx context.Context, params *CreateParams) error {
	if params.Name == "" {
		return ErrMissingName
	}
	switch params.Type {
	case models.TypeFile, models.TypeFolder, models.TypeImage:
	default:
		return ErrMissingType
	}
	if params.Data == "" && params.Type != models.TypeFolder {
		return ErrMissingData
	}

	if params.ParentID == "" {
		params.ParentID = models.RootParentID
	}
	if params.ParentID != models.RootParentID {
		if !isValidID(params.ParentID) {
			return ErrParentNotFound
		}
		parent, err := s.repo.FindOne(ctx, Filter{ID: params.ParentID})
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrParentNotFound
		}
		if !parent.IsFolder() {
			return ErrParentNotFolder
		}
	}
	return nil
}

// Enqueue failures never fail the request; jobs are best-effort by contract.

func (s *Service) enqueueFileJob(ctx context.Context, job queue.FileJob) {
	if err := s.queue.EnqueueFileJob(ctx, job); err != nil {
		log.Printf("enqueue file job for %s: %v", job.FileID, err)
	}
}

func (s *Service) enqueueUserJob(ctx context.Context, job queue.UserJob) {
	if err := s.queue.EnqueueUserJob(ctx, job); err != nil {
		log.Printf("enqueue user job for %s: %v", job.UserID, err)
	}
}

func project(f *models.File) *Response {
	return &Response{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

func contentType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}
