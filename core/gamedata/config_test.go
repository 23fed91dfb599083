package gamedata_test

import (
	"testing"

	"whitecore/core/gamedata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Filesystem", gamedata.SourceFS, true},
		{"Bucket", gamedata.SourceBucket, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gamedata.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}

func TestConfig_Paths(t *testing.T) {
	c := gamedata.Config{ModsRoot: "user/mods/", ModFolder: "MoxoPixel-WhiteCore"}

	assert.Equal(t, "user/mods/MoxoPixel-WhiteCore/", c.ModPath())
	assert.Equal(t, "user/mods/MoxoPixel-WhiteCore/database/", c.DatabasePath())
}

func TestConfig_TraderRefs(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c := gamedata.Config{Traders: "painter=668aaff35fd574b6dcc4a686"}
		refs, err := c.TraderRefs()
		require.NoError(t, err)
		assert.Equal(t, []gamedata.TraderRef{{Name: "painter", ID: "668aaff35fd574b6dcc4a686"}}, refs)
	})

	t.Run("SortedAndTrimmed", func(t *testing.T) {
		c := gamedata.Config{Traders: " skier = 58330581ace78e27b8b10cee, painter=668aaff35fd574b6dcc4a686,"}
		refs, err := c.TraderRefs()
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "painter", refs[0].Name)
		assert.Equal(t, "58330581ace78e27b8b10cee", refs[1].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		refs, err := gamedata.Config{}.TraderRefs()
		require.NoError(t, err)
		assert.Empty(t, refs)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := gamedata.Config{Traders: "painter"}.TraderRefs()
		assert.Error(t, err)
	})
}
