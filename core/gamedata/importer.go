package gamedata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Importer loads database directories into nested trees.
type Importer struct {
	logger *zap.Logger
}

// NewImporter creates a new importer.
func NewImporter(logger *zap.Logger) *Importer {
	return &Importer{logger: logger}
}

// LoadRecursive decodes every data file under root and nests the results by path.
// Files with other extensions are skipped. ErrNotFound is returned when root has no
// data files.
func (i *Importer) LoadRecursive(ctx context.Context, src Source, root string) (map[string]any, error) {
	files, err := src.List(ctx, root)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	loaded := 0
	for _, rel := range files {
		ext := strings.ToLower(path.Ext(rel))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			i.logger.Debug("Skipping non data file", zap.String("file", rel))
			continue
		}

		value, err := i.decodeFile(ctx, src, path.Join(root, rel), ext)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", rel, err)
		}

		segments := strings.Split(strings.TrimSuffix(rel, path.Ext(rel)), "/")
		if err := insert(out, segments, value); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", rel, err)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
	}

	i.logger.Debug("Loaded database", zap.String("root", root), zap.Int("files", loaded))
	return out, nil
}

func (i *Importer) decodeFile(ctx context.Context, src Source, name, ext string) (any, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var value any
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &value)
	default:
		err = yaml.Unmarshal(data, &value)
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// insert places value at segments, creating intermediate trees.
func insert(root map[string]any, segments []string, value any) error {
	node := root
	for _, seg := range segments[:len(segments)-1] {
		next, exists := node[seg]
		if !exists {
			child := make(map[string]any)
			node[seg] = child
			node = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("path segment %q is both a file and a directory", seg)
		}
		node = child
	}

	leaf := segments[len(segments)-1]
	existing, exists := node[leaf]
	if !exists {
		node[leaf] = value
		return nil
	}

	// A file and a directory sharing a name merge when both hold objects.
	dst, ok1 := existing.(map[string]any)
	src, ok2 := value.(map[string]any)
	if !ok1 || !ok2 {
		return fmt.Errorf("duplicate entry %q", leaf)
	}
	for k, v := range src {
		if _, taken := dst[k]; taken {
			return fmt.Errorf("duplicate entry %q.%q", leaf, k)
		}
		dst[k] = v
	}
	return nil
}
