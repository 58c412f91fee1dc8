package gos

import (
	"io"
	"time"
)

// FileInfo
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

type ReadCloser = io.ReadCloser

// Stat(name) (FileInfo, error)
// Open(name) (ReadCloser, error)
// WriteFile(name, data, perm) error
// IsNotExist(err) bool
