package integrity

import (
	"context"

	"whitecore/core/gamedata"
	"whitecore/core/storage"
	"whitecore/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	cfg    gamedata.Config
	source gamedata.Source
	client storage.Client
	bucket string
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. client is only used for bucket sources
// and db only for the ledger schema check; both may be nil.
func NewService(cfg gamedata.Config, source gamedata.Source, client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
	}
}

// CheckHost returns the missing entries of the host database.
func (s *Service) CheckHost(ctx context.Context) ([]string, error) {
	if err := s.checkBucket(ctx); err != nil {
		return nil, err
	}
	return checks.CheckStructure(ctx, s.source, s.cfg.HostPath, checks.HostLayout)
}

// CheckMod returns the missing entries of the mod database.
func (s *Service) CheckMod(ctx context.Context) ([]string, error) {
	if err := s.checkBucket(ctx); err != nil {
		return nil, err
	}
	return checks.CheckStructure(ctx, s.source, s.cfg.DatabasePath(), checks.ModLayout)
}

// CheckLedger compares the ledger tables with the ledger models.
func (s *Service) CheckLedger() (*checks.SchemaReport, error) {
	return checks.CheckLedgerSchema(s.db)
}

func (s *Service) checkBucket(ctx context.Context) error {
	if s.cfg.Source != gamedata.SourceBucket || s.client == nil {
		return nil
	}
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// Section is the result of one check in a Report.
type Section struct {
	Status  string   `json:"status"` // "ok", "missing", "error"
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Report combines the host and mod layout checks and, with a database, the ledger schema.
type Report struct {
	Host   Section              `json:"host"`
	Mod    Section              `json:"mod"`
	Ledger *checks.SchemaReport `json:"ledger,omitempty"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	if r.Host.Status != "ok" || r.Mod.Status != "ok" {
		return false
	}
	return r.Ledger == nil || r.Ledger.Matched
}

// Run performs all checks. Failures are recorded on the report.
func (s *Service) Run(ctx context.Context) *Report {
	report := &Report{
		Host: section(s.CheckHost(ctx)),
		Mod:  section(s.CheckMod(ctx)),
	}
	if s.db != nil {
		ledger, err := s.CheckLedger()
		if err != nil {
			s.logger.Error("Ledger schema check failed", zap.Error(err))
		}
		report.Ledger = ledger
	}
	return report
}

func section(missing []string, err error) Section {
	switch {
	case err != nil:
		return Section{Status: "error", Error: err.Error()}
	case len(missing) > 0:
		return Section{Status: "missing", Missing: missing}
	default:
		return Section{Status: "ok"}
	}
}
