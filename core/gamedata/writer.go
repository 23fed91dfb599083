package gamedata

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"whitecore/core/storage"

	"github.com/goccy/go-json"
	"github.com/google/renameio/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Sink stores written files.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// DirSink writes files under a local directory, replacing each one atomically.
type DirSink struct {
	root string
}

// NewDirSink creates a sink rooted at root.
func NewDirSink(root string) *DirSink {
	return &DirSink{root: root}
}

func (s *DirSink) Put(_ context.Context, name string, data []byte) error {
	target := filepath.Join(s.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}

	pending, err := renameio.NewPendingFile(target, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", name, err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", name, err)
	}
	return nil
}

// BucketSink uploads files under a bucket prefix.
type BucketSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSink creates a sink writing to bucket under prefix.
func NewBucketSink(client storage.Client, bucket, prefix string) *BucketSink {
	return &BucketSink{client: client, bucket: bucket, prefix: prefix}
}

func (s *BucketSink) Put(ctx context.Context, name string, data []byte) error {
	key := path.Join(s.prefix, name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

// Writer persists the tables touched by an injection.
type Writer struct {
	sink   Sink
	logger *zap.Logger
}

// NewWriter creates a new writer.
func NewWriter(sink Sink, logger *zap.Logger) *Writer {
	return &Writer{sink: sink, logger: logger}
}

// Files encodes the patched tables keyed by their path relative to the database root.
// Only the assorts of the given traders are included.
func Files(tables *Tables, traderIDs []string) (map[string][]byte, error) {
	files := make(map[string][]byte)

	add := func(name string, v any) error {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		files[name] = data
		return nil
	}

	if err := add("templates/items.json", tables.Templates.Items); err != nil {
		return nil, err
	}
	if err := add("templates/handbook.json", tables.Templates.Handbook); err != nil {
		return nil, err
	}
	for _, lang := range tables.Languages() {
		if err := add("locales/global/"+lang+".json", tables.Locales.Global[lang]); err != nil {
			return nil, err
		}
	}
	for _, id := range traderIDs {
		trader, ok := tables.Traders[id]
		if !ok || trader.Assort == nil {
			continue
		}
		if err := add("traders/"+id+"/assort.json", trader.Assort); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// Write encodes the patched tables and stores them. It returns the written names.
func (w *Writer) Write(ctx context.Context, tables *Tables, traderIDs []string) ([]string, error) {
	files, err := Files(tables, traderIDs)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.sink.Put(ctx, name, files[name]); err != nil {
			w.logger.Error("Failed to write table", zap.String("file", name), zap.Error(err))
			return nil, err
		}
		w.logger.Debug("Wrote table", zap.String("file", name), zap.Int("bytes", len(files[name])))
	}
	return names, nil
}
