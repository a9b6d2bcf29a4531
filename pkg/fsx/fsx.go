package fsx

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/Abraxas-365/mailbatch/pkg/errx"
)

var fsxErrors = errx.NewRegistry("FSX")

var (
	ErrNotFound        = fsxErrors.Register("NOT_FOUND", errx.TypeNotFound, "File not found")
	ErrReadFailed      = fsxErrors.Register("READ_FAILED", errx.TypeExternal, "Failed to read file")
	ErrInvalidLocation = fsxErrors.Register("INVALID_LOCATION", errx.TypeValidation, "Invalid file location")
)

// Errors exposes the package registry so backends register under FSX_.
func Errors() *errx.Registry { return fsxErrors }

// FileInfo represents information about a file
type FileInfo struct {
	Name    string    // Base name of the file
	Size    int64     // File size in bytes
	ModTime time.Time // Modification time
}

// FileReader provides read-only operations
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	Stat(ctx context.Context, path string) (FileInfo, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// Scheme identifies the backend a Location lives on.
type Scheme string

const (
	SchemeFile Scheme = "file"
	SchemeS3   Scheme = "s3"
)

// Location is a parsed file reference: a local path or s3://bucket/key.
type Location struct {
	Scheme Scheme
	Bucket string
	Path   string
}

// String renders the location back to its URL form.
func (l Location) String() string {
	if l.Scheme == SchemeS3 {
		return "s3://" + l.Bucket + "/" + l.Path
	}
	return l.Path
}

// ParseLocation parses raw as an s3:// URL or, failing that, a local path.
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{}, fsxErrors.New(ErrInvalidLocation).WithDetail("reason", "empty location")
	}

	if !strings.HasPrefix(raw, "s3://") {
		return Location{Scheme: SchemeFile, Path: strings.TrimPrefix(raw, "file://")}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fsxErrors.NewWithCause(ErrInvalidLocation, err).WithDetail("location", raw)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return Location{}, fsxErrors.New(ErrInvalidLocation).
			WithDetail("location", raw).
			WithDetail("reason", "expected s3://bucket/key")
	}
	return Location{Scheme: SchemeS3, Bucket: u.Host, Path: key}, nil
}
