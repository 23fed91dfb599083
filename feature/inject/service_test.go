package inject_test

import (
	"context"
	"testing"

	"whitecore/core/database"
	"whitecore/core/gamedata"
	"whitecore/core/gamedata/gamedatatest"
	"whitecore/core/metrics"
	"whitecore/feature/inject"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() gamedata.Config {
	return gamedata.Config{
		HostPath:  "SPT_Data/Server/database",
		ModsRoot:  "user/mods",
		ModFolder: "MoxoPixel-WhiteCore",
		Source:    gamedata.SourceFS,
		Traders:   "painter=" + gamedatatest.TraderID,
	}
}

func newService(t *testing.T, cfg gamedata.Config, withMod bool, ledger *inject.Ledger) *inject.Service {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, gamedatatest.WriteFiles(fs, cfg.HostPath, gamedatatest.HostFiles()))
	if withMod {
		require.NoError(t, gamedatatest.WriteFiles(fs, cfg.DatabasePath(), gamedatatest.ModFiles()))
	}
	return inject.NewService(cfg, gamedata.NewFSSource(fs), ledger, zap.NewNop())
}

func TestServiceLoad(t *testing.T) {
	svc := newService(t, testConfig(), true, nil)

	tables, mod, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, tables.Templates.Items, 5)
	assert.Equal(t, []string{"en", "ru"}, tables.Languages())
	assert.Len(t, mod.Items, 3)
	assert.Contains(t, mod.Traders, gamedatatest.TraderID)
}

func TestServiceLoad_MissingMod(t *testing.T) {
	svc := newService(t, testConfig(), false, nil)

	_, _, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, inject.ErrMissingDatabase)
}

func TestServicePostDBLoad(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	ledger := inject.NewLedger(db)
	require.NoError(t, ledger.Migrate())

	svc := newService(t, testConfig(), true, ledger)

	_, err = svc.LastReport()
	assert.ErrorIs(t, err, inject.ErrNoRun)

	okBefore := testutil.ToFloat64(metrics.RunsTotal.WithLabelValues(inject.RunOK))
	appliedBefore := testutil.ToFloat64(metrics.OutcomesTotal.WithLabelValues(string(inject.KindItem), string(inject.StatusApplied)))

	report, tables := svc.PostDBLoad(context.Background())
	require.NotNil(t, tables)
	assert.Equal(t, inject.RunOK, report.Status)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.Summary.Applied)
	assert.Contains(t, tables.Templates.Items, gamedatatest.ModWeaponID)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.RunsTotal.WithLabelValues(inject.RunOK)))
	assert.Equal(t, appliedBefore+2, testutil.ToFloat64(metrics.OutcomesTotal.WithLabelValues(string(inject.KindItem), string(inject.StatusApplied))))

	last, err := svc.LastReport()
	require.NoError(t, err)
	assert.Equal(t, report.RunID, last.RunID)

	runs, err := svc.Runs(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, report.RunID, runs[0].ID)

	v, err := svc.Verify()
	require.NoError(t, err)
	assert.Equal(t, 3, v.Summary.Pass)

	check, err := svc.VerifyItem(gamedatatest.ModWeaponID)
	require.NoError(t, err)
	assert.Equal(t, inject.CheckPass, check.Status)

	_, err = svc.VerifyItem(gamedatatest.WeaponID)
	assert.ErrorIs(t, err, inject.ErrUnknownItem)
}

func TestServicePostDBLoad_EachRunStartsFromSource(t *testing.T) {
	svc := newService(t, testConfig(), true, nil)

	_, first := svc.PostDBLoad(context.Background())
	_, second := svc.PostDBLoad(context.Background())

	assert.Len(t, first.Traders[gamedatatest.TraderID].Assort.Items, 2)
	assert.Len(t, second.Traders[gamedatatest.TraderID].Assort.Items, 2)
}

func TestServicePostDBLoad_Aborted(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() gamedata.Config
		withMod bool
	}{
		{
			name:    "MissingMod",
			cfg:     testConfig,
			withMod: false,
		},
		{
			name: "MalformedTraders",
			cfg: func() gamedata.Config {
				cfg := testConfig()
				cfg.Traders = "painter"
				return cfg
			},
			withMod: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.cfg(), tt.withMod, nil)

			report, tables := svc.PostDBLoad(context.Background())

			assert.Nil(t, tables)
			assert.Equal(t, inject.RunAborted, report.Status)
			assert.NotEmpty(t, report.Error)

			_, err := svc.Verify()
			assert.ErrorIs(t, err, inject.ErrNoRun)
		})
	}
}
