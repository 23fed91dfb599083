package traders_test

import (
	"testing"

	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"
	"whitecore/feature/traders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func modTraders(t *testing.T) map[string]*gamedata.Trader {
	t.Helper()
	var mod map[string]*gamedata.Trader
	require.NoError(t, gamedata.DecodeInto(gamedatatest.ModTree()["traders"], &mod))
	return mod
}

func TestMergeAssort(t *testing.T) {
	tables := gamedatatest.Tables()
	merger := traders.NewMerger(zap.NewNop(), traders.Options{})

	result, err := merger.MergeAssort(tables, modTraders(t), gamedatatest.TraderID)
	require.NoError(t, err)
	assert.Equal(t, &traders.MergeResult{
		TraderID:     gamedatatest.TraderID,
		Items:        1,
		BarterScheme: 1,
		LoyalLevels:  1,
	}, result)

	assort := tables.Traders[gamedatatest.TraderID].Assort
	require.Len(t, assort.Items, 2)
	assert.Equal(t, gamedatatest.ModOfferID, assort.Items[1]["_id"])
	assert.Contains(t, assort.BarterScheme, gamedatatest.ModOfferID)
	assert.Equal(t, float64(2), assort.LoyalLevelItems[gamedatatest.ModOfferID])
	// Host entries survive.
	assert.Contains(t, assort.BarterScheme, "66a0f1c2e4b0c1a2b3c4d500")
}

// Merging is additive: running the same merge twice duplicates the mod items.
func TestMergeAssort_TwiceDuplicatesItems(t *testing.T) {
	tables := gamedatatest.Tables()
	merger := traders.NewMerger(zap.NewNop(), traders.Options{})
	mod := modTraders(t)

	_, err := merger.MergeAssort(tables, mod, gamedatatest.TraderID)
	require.NoError(t, err)
	_, err = merger.MergeAssort(tables, mod, gamedatatest.TraderID)
	require.NoError(t, err)

	assort := tables.Traders[gamedatatest.TraderID].Assort
	assert.Len(t, assort.Items, 3)
	assert.Len(t, assort.BarterScheme, 2)
	assert.Len(t, assort.LoyalLevelItems, 2)
}

func TestMergeAssort_SkipExisting(t *testing.T) {
	tables := gamedatatest.Tables()
	merger := traders.NewMerger(zap.NewNop(), traders.Options{SkipExisting: true})
	mod := modTraders(t)

	_, err := merger.MergeAssort(tables, mod, gamedatatest.TraderID)
	require.NoError(t, err)
	result, err := merger.MergeAssort(tables, mod, gamedatatest.TraderID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Items)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, tables.Traders[gamedatatest.TraderID].Assort.Items, 2)
}

func TestMergeAssort_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		tables func() *gamedata.Tables
		mod    func(t *testing.T) map[string]*gamedata.Trader
		trader string
	}{
		{
			name:   "UnknownTrader",
			tables: gamedatatest.Tables,
			mod:    modTraders,
			trader: "54cb50c76803fa8b248b4571",
		},
		{
			name: "HostWithoutAssort",
			tables: func() *gamedata.Tables {
				tables := gamedatatest.Tables()
				tables.Traders[gamedatatest.TraderID].Assort = nil
				return tables
			},
			mod:    modTraders,
			trader: gamedatatest.TraderID,
		},
		{
			name:   "ModWithoutTrader",
			tables: gamedatatest.Tables,
			mod: func(t *testing.T) map[string]*gamedata.Trader {
				return map[string]*gamedata.Trader{}
			},
			trader: gamedatatest.TraderID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			merger := traders.NewMerger(zap.New(core), traders.Options{})
			tables := tt.tables()

			_, err := merger.MergeAssort(tables, tt.mod(t), tt.trader)
			assert.ErrorIs(t, err, traders.ErrInvalidAssort)
			assert.Equal(t, 1, logs.FilterMessage("Invalid trader assort data for trader: "+tt.trader).Len())
		})
	}
}
