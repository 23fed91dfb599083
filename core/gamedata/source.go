package gamedata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"whitecore/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when a database root holds nothing to load.
var ErrNotFound = errors.New("database not found")

// Source exposes a tree of data files addressed by slash-separated paths.
type Source interface {
	// List returns the files under root, relative to root, sorted.
	List(ctx context.Context, root string) ([]string, error)
	// Open opens a single file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Exists reports whether name is a file or a non-empty directory.
	Exists(ctx context.Context, name string) (bool, error)
}

// FSSource reads from a filesystem.
type FSSource struct {
	fs afero.Fs
}

// NewFSSource creates a source over fs. Pass afero.NewOsFs() for the local disk.
func NewFSSource(fs afero.Fs) *FSSource {
	return &FSSource{fs: fs}
}

func (s *FSSource) List(ctx context.Context, root string) ([]string, error) {
	ok, err := afero.DirExists(s.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
	}

	var files []string
	err = afero.Walk(s.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(filepath.Clean(root), p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func (s *FSSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return s.fs.Open(name)
}

func (s *FSSource) Exists(_ context.Context, name string) (bool, error) {
	return afero.Exists(s.fs, name)
}

// BucketSource reads from an object storage bucket.
type BucketSource struct {
	client storage.Client
	bucket string
}

// NewBucketSource creates a source over bucket.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket}
}

func (s *BucketSource) List(ctx context.Context, root string) ([]string, error) {
	prefix := dirPrefix(root)

	var files []string
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		// Folder markers
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		files = append(files, strings.TrimPrefix(obj.Key, prefix))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
	}

	sort.Strings(files)
	return files, nil
}

func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
}

func (s *BucketSource) Exists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	name = strings.TrimSuffix(name, "/")
	opts := minio.ListObjectsOptions{Prefix: name, Recursive: false, MaxKeys: 1}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return false, fmt.Errorf("failed to check %s: %w", name, obj.Err)
		}
		if obj.Key == name || strings.HasPrefix(obj.Key, name+"/") {
			return true, nil
		}
	}
	return false, nil
}

// NewSource builds the source selected by cfg.
func NewSource(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceFS:
		return NewFSSource(afero.NewOsFs()), nil
	case SourceBucket:
		if client == nil {
			return nil, errors.New("bucket source requires a storage client")
		}
		return NewBucketSource(client, bucket), nil
	default:
		return nil, fmt.Errorf("unsupported source %q", cfg.Source)
	}
}

func dirPrefix(root string) string {
	root = strings.TrimPrefix(path.Clean("/"+root), "/")
	if root == "" {
		return ""
	}
	return root + "/"
}
