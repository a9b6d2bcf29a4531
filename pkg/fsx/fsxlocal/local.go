package fsxlocal

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/mailbatch/pkg/fsx"
)

var fsxErrors = fsx.Errors()

// LocalFileSystem implements fsx.FileReader on local disk
type LocalFileSystem struct {
	basePath string // Root for relative paths
}

// NewLocalFileSystem creates a reader rooted at basePath. An empty basePath
// means the working directory. Absolute paths bypass the root.
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	if basePath == "" {
		basePath = "."
	}
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fsxErrors.NewWithCause(fsx.ErrInvalidLocation, err).WithDetail("path", basePath)
	}
	return &LocalFileSystem{basePath: absPath}, nil
}

// GetBasePath returns the absolute root directory
func (lfs *LocalFileSystem) GetBasePath() string {
	return lfs.basePath
}

func (lfs *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(lfs.fullPath(path))
	if err != nil {
		return nil, lfs.wrap(err, path)
	}
	return data, nil
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, path string) (fsx.FileInfo, error) {
	info, err := os.Stat(lfs.fullPath(path))
	if err != nil {
		return fsx.FileInfo{}, lfs.wrap(err, path)
	}
	return fsx.FileInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func (lfs *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(lfs.fullPath(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, lfs.wrap(err, path)
}

func (lfs *LocalFileSystem) fullPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(lfs.basePath, path)
}

func (lfs *LocalFileSystem) wrap(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fsxErrors.New(fsx.ErrNotFound).WithDetail("path", path)
	}
	return fsxErrors.NewWithCause(fsx.ErrReadFailed, err).WithDetail("path", path)
}
