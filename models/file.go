package models

import (
	"time"
)

// File types accepted on upload.
const (
	TypeFile   = "file"
	TypeFolder = "folder"
	TypeImage  = "image"
)

// RootParentID is the sentinel for top-level files; it never names a real record.
const RootParentID = "0"

type File struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	IsPublic  bool      `db:"is_public"`
	ParentID  string    `db:"parent_id"`
	LocalPath string    `db:"local_path"` // empty for folders
	CreatedAt time.Time `db:"created_at"`
}

// IsFolder reports whether the record is a folder and therefore carries no content.
func (f *File) IsFolder() bool {
	return f.Type == TypeFolder
}
