package gamedata_test

import (
	"context"
	"errors"
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImporter_LoadRecursive(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, gamedatatest.WriteFiles(fs, "server/database", gamedatatest.HostFiles()))
	require.NoError(t, afero.WriteFile(fs, "server/database/README.md", []byte("# notes"), 0o644))

	importer := gamedata.NewImporter(zap.NewNop())
	tree, err := importer.LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "server/database/")
	require.NoError(t, err)

	templates, ok := tree["templates"].(map[string]any)
	require.True(t, ok)
	items, ok := templates["items"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, items, 5)
	assert.Contains(t, items, gamedatatest.WeaponID)

	locales := tree["locales"].(map[string]any)["global"].(map[string]any)
	assert.Contains(t, locales, "en")
	assert.Contains(t, locales, "ru")

	traders := tree["traders"].(map[string]any)
	trader := traders[gamedatatest.TraderID].(map[string]any)
	assert.Contains(t, trader, "assort")
	assert.Contains(t, trader, "base")

	_, hasReadme := tree["README"]
	assert.False(t, hasReadme)
}

func TestImporter_LoadRecursive_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	yamlDef := []byte(`
66a0f1c2e4b0c1a2b3c4d501:
  clone: 5447a9cd4bdc2dbd208b4567
  enable: true
  items:
    _props:
      Weight: 2.6
  wcConflicts:
    - 55d4b9964bdc2d1d4e8b456e
`)
	require.NoError(t, afero.WriteFile(fs, "mod/database/items.yaml", yamlDef, 0o644))

	tree, err := gamedata.NewImporter(zap.NewNop()).LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "mod/database")
	require.NoError(t, err)

	items := tree["items"].(map[string]any)
	def := items["66a0f1c2e4b0c1a2b3c4d501"].(map[string]any)
	assert.Equal(t, true, def["enable"])
	assert.Equal(t, []any{"55d4b9964bdc2d1d4e8b456e"}, def["wcConflicts"])
}

func TestImporter_LoadRecursive_StripsBOM(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "db/items.json", []byte("\xef\xbb\xbf{\"a\": 1}"), 0o644))

	tree, err := gamedata.NewImporter(zap.NewNop()).LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "db")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, tree["items"])
}

func TestImporter_LoadRecursive_Errors(t *testing.T) {
	importer := gamedata.NewImporter(zap.NewNop())

	t.Run("MissingRoot", func(t *testing.T) {
		_, err := importer.LoadRecursive(context.Background(), gamedata.NewFSSource(afero.NewMemMapFs()), "nowhere")
		assert.True(t, errors.Is(err, gamedata.ErrNotFound))
	})

	t.Run("NoDataFiles", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "db/notes.txt", []byte("x"), 0o644))
		_, err := importer.LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "db")
		assert.True(t, errors.Is(err, gamedata.ErrNotFound))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "db/items.json", []byte("{"), 0o644))
		_, err := importer.LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "db")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "items.json")
	})

	t.Run("FileShadowsDirectory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "db/a.json", []byte(`"leaf"`), 0o644))
		require.NoError(t, afero.WriteFile(fs, "db/a/b.json", []byte(`{}`), 0o644))
		_, err := importer.LoadRecursive(context.Background(), gamedata.NewFSSource(fs), "db")
		assert.Error(t, err)
	})
}
