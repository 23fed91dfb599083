package checks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"whitecore/core/gamedata"
	"whitecore/core/storage"
)

// CheckStructure returns the requirements missing under root.
func CheckStructure(ctx context.Context, src gamedata.Source, root string, required []Requirement) ([]string, error) {
	missing := []string{}

	for _, req := range required {
		found := false
		for _, p := range req.Paths {
			ok, err := exists(ctx, src, path.Join(root, p), strings.HasSuffix(p, "/"))
			if err != nil {
				return nil, fmt.Errorf("failed to check %s: %w", req.Name, err)
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req.Name)
		}
	}

	return missing, nil
}

func exists(ctx context.Context, src gamedata.Source, name string, dir bool) (bool, error) {
	if !dir {
		return src.Exists(ctx, name)
	}
	files, err := src.List(ctx, name)
	if errors.Is(err, gamedata.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

// CheckBucket fails when the bucket is unreachable or does not exist.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
