package checks

import (
	"context"
	"strings"
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"
	"whitecore/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckStructure(t *testing.T) {
	t.Run("Host Complete", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, gamedatatest.WriteFiles(fs, "host", gamedatatest.HostFiles()))

		missing, err := CheckStructure(context.Background(), gamedata.NewFSSource(fs), "host", HostLayout)
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Host Missing Handbook And Traders", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		files := gamedatatest.HostFiles()
		delete(files, "templates/handbook.json")
		for name := range files {
			if strings.HasPrefix(name, "traders/") {
				delete(files, name)
			}
		}
		require.NoError(t, gamedatatest.WriteFiles(fs, "host", files))

		missing, err := CheckStructure(context.Background(), gamedata.NewFSSource(fs), "host", HostLayout)
		assert.NoError(t, err)
		assert.Equal(t, []string{"templates/handbook.json", "traders/"}, missing)
	})

	t.Run("Mod Items As Directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		files := map[string][]byte{
			"items/weapons.yaml": []byte("{}"),
		}
		files["traders/"+gamedatatest.TraderID+"/assort.json"] = []byte("{}")
		require.NoError(t, gamedatatest.WriteFiles(fs, "mod", files))

		missing, err := CheckStructure(context.Background(), gamedata.NewFSSource(fs), "mod", ModLayout)
		assert.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("Mod Missing Entirely", func(t *testing.T) {
		missing, err := CheckStructure(context.Background(), gamedata.NewFSSource(afero.NewMemMapFs()), "mod", ModLayout)
		assert.NoError(t, err)
		assert.Equal(t, []string{"items", "traders/"}, missing)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("ListObjects", mock.Anything, "spt-database", mock.Anything).
			Return(func(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				ch := make(chan minio.ObjectInfo, 1)
				ch <- minio.ObjectInfo{Err: assert.AnError}
				close(ch)
				return ch
			})

		src := gamedata.NewBucketSource(mockClient, "spt-database")
		_, err := CheckStructure(context.Background(), src, "host", HostLayout)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCheckBucket(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "spt-database").Return(false, nil)

		err := CheckBucket(context.Background(), mockClient, "spt-database")
		assert.EqualError(t, err, "bucket spt-database does not exist")
	})

	t.Run("Unreachable", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "spt-database").Return(false, assert.AnError)

		err := CheckBucket(context.Background(), mockClient, "spt-database")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Ok", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "spt-database").Return(true, nil)

		assert.NoError(t, CheckBucket(context.Background(), mockClient, "spt-database"))
		mockClient.AssertExpectations(t)
	})
}
