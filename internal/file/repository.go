package file

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ZidiEya/holbertonschool-files-manager/models"
)

// PageSize is the fixed page length for hierarchical listings.
const PageSize = 20

// Filter selects file records by any combination of fields; a zero field is
// unconstrained.
type Filter struct {
	ID       string
	UserID   string
	ParentID string
}

const fileColumns = "id, user_id, name, type, is_public, parent_id, local_path, created_at"

// Repository is the Postgres-backed file metadata store.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new record, assigning its ID.
func (r *Repository) Insert(ctx context.Context, f *models.File) error {
	f.ID = uuid.NewString()
	row := r.db.QueryRowxContext(ctx, `
		INSERT INTO files (id, user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		f.ID, f.UserID, f.Name, f.Type, f.IsPublic, f.ParentID, f.LocalPath,
	)
	return row.Scan(&f.CreatedAt)
}

// FindOne returns the single record matching the filter, or nil when absent.
func (r *Repository) FindOne(ctx context.Context, filter Filter) (*models.File, error) {
	where, args := buildWhere(filter)
	if where == "" {
		return nil, fmt.Errorf("empty file filter")
	}

	var f models.File
	query := fmt.Sprintf("SELECT %s FROM files WHERE %s LIMIT 1", fileColumns, where)
	err := r.db.GetContext(ctx, &f, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindPage returns up to size records under parentID in insertion order,
// skipping page*size records. An unknown parent simply yields an empty page.
func (r *Repository) FindPage(ctx context.Context, parentID string, page, size int) ([]models.File, error) {
	if page < 0 {
		page = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM files
		WHERE parent_id = $1
		ORDER BY position ASC
		LIMIT $2 OFFSET $3`, fileColumns)

	files := []models.File{}
	err := r.db.SelectContext(ctx, &files, query, parentID, size, page*size)
	if err != nil {
		return nil, err
	}
	return files, nil
}

// SetPublic flips the visibility of a record owned by userID and returns the
// updated row, or nil when no such record exists for that owner.
func (r *Repository) SetPublic(ctx context.Context, id, userID string, public bool) (*models.File, error) {
	var f models.File
	query := fmt.Sprintf(`
		UPDATE files SET is_public = $1
		WHERE id = $2 AND user_id = $3
		RETURNING %s`, fileColumns)
	err := r.db.GetContext(ctx, &f, query, public, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Count returns the total number of file records.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM files")
	return n, err
}

func buildWhere(filter Filter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("id", filter.ID)
	add("user_id", filter.UserID)
	add("parent_id", filter.ParentID)
	return strings.Join(clauses, " AND "), args
}
