package inject

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"whitecore/core/gamedata"
	"whitecore/core/metrics"
	"whitecore/feature/traders"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoRun is returned when a result is requested before any pass ran.
var ErrNoRun = errors.New("no injection run yet")

// ErrUnknownItem is returned when an id is not a mod item.
var ErrUnknownItem = errors.New("item is not defined by the mod")

// Service loads the databases and runs injection passes.
type Service struct {
	cfg      gamedata.Config
	source   gamedata.Source
	importer *gamedata.Importer
	ledger   *Ledger
	logger   *zap.Logger

	mu     sync.RWMutex
	last   *Report
	tables *gamedata.Tables
	mod    *ModDatabase
}

// NewService creates a new inject service. ledger may be nil.
func NewService(cfg gamedata.Config, source gamedata.Source, ledger *Ledger, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		source:   source,
		importer: gamedata.NewImporter(logger),
		ledger:   ledger,
		logger:   logger,
	}
}

// Load reads the host and the mod database concurrently.
func (s *Service) Load(ctx context.Context) (*gamedata.Tables, *ModDatabase, error) {
	var hostRaw, modRaw map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hostRaw, err = s.importer.LoadRecursive(gctx, s.source, s.cfg.HostPath)
		return err
	})
	g.Go(func() error {
		var err error
		modRaw, err = s.importer.LoadRecursive(gctx, s.source, s.cfg.DatabasePath())
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, gamedata.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %v", ErrMissingDatabase, err)
		}
		return nil, nil, err
	}

	tables, err := gamedata.Decode(hostRaw)
	if err != nil {
		return nil, nil, err
	}
	mod, err := DecodeMod(modRaw)
	if err != nil {
		return nil, nil, err
	}
	return tables, mod, nil
}

// PostDBLoad loads both databases and applies the mod to the host tables. Failures
// are logged and recorded on the report; the returned tables are nil when loading
// failed.
func (s *Service) PostDBLoad(ctx context.Context) (*Report, *gamedata.Tables) {
	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))

	tables, mod, err := s.Load(ctx)
	var report *Report
	if err == nil {
		report, err = s.run(runID, tables, mod, l)
	}
	if err != nil {
		l.Error("Error loading WhiteCore mod: " + err.Error())
		report = newReport(runID)
		report.abort(err)
		report.finish()
		tables, mod = nil, nil
	}

	s.observe(report)
	if s.ledger != nil {
		if err := s.ledger.Record(ctx, report); err != nil {
			l.Warn("Failed to record injection run", zap.Error(err))
		}
	}

	s.mu.Lock()
	s.last, s.tables, s.mod = report, tables, mod
	s.mu.Unlock()

	return report, tables
}

func (s *Service) run(runID string, tables *gamedata.Tables, mod *ModDatabase, l *zap.Logger) (*Report, error) {
	refs, err := s.cfg.TraderRefs()
	if err != nil {
		return nil, err
	}
	pass := &Pass{
		RunID:   runID,
		Tables:  tables,
		Mod:     mod,
		Traders: refs,
		Options: traders.Options{SkipExisting: s.cfg.DedupeAssort},
		Logger:  l,
	}
	return pass.Run(), nil
}

func (s *Service) observe(report *Report) {
	metrics.RunsTotal.WithLabelValues(report.Status).Inc()
	metrics.RunDuration.Observe(report.Duration().Seconds())
	for _, o := range report.Outcomes {
		metrics.OutcomesTotal.WithLabelValues(string(o.Kind), string(o.Status)).Inc()
		for _, issue := range o.Issues {
			metrics.MergeIssuesTotal.WithLabelValues(string(issue.Kind)).Inc()
		}
	}
}

// LastReport returns the report of the latest pass.
func (s *Service) LastReport() (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, ErrNoRun
	}
	return s.last, nil
}

// Verify checks every mod item against the tables of the latest pass.
func (s *Service) Verify() (*Verification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil || s.mod == nil {
		return nil, ErrNoRun
	}
	return Verify(s.tables, s.mod), nil
}

// VerifyItem checks one mod item against the tables of the latest pass.
func (s *Service) VerifyItem(id string) (*ItemCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tables == nil || s.mod == nil {
		return nil, ErrNoRun
	}
	if _, ok := s.mod.IDs()[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	check := VerifyItem(s.tables, s.mod, id)
	return &check, nil
}

// Runs returns the latest runs stored in the ledger.
func (s *Service) Runs(ctx context.Context, limit int) ([]InjectionRun, error) {
	if s.ledger == nil {
		return []InjectionRun{}, nil
	}
	return s.ledger.Recent(ctx, limit)
}

// RunOutcomes returns the recorded outcomes of a run.
func (s *Service) RunOutcomes(ctx context.Context, runID string) ([]InjectionOutcome, error) {
	if s.ledger == nil {
		return []InjectionOutcome{}, nil
	}
	return s.ledger.Outcomes(ctx, runID)
}
