package inject

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// InjectionRun is one row of the 'injection_runs' table.
type InjectionRun struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Status     string    `gorm:"column:status;type:varchar(16)" json:"status"`
	Error      string    `gorm:"column:error" json:"error,omitempty"`
	StartedAt  time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`
	Applied    int       `gorm:"column:applied" json:"applied"`
	Skipped    int       `gorm:"column:skipped" json:"skipped"`
	Failed     int       `gorm:"column:failed" json:"failed"`
	Issues     int       `gorm:"column:issues" json:"issues"`
}

// TableName overrides the gorm default.
func (InjectionRun) TableName() string {
	return "injection_runs"
}

// InjectionOutcome is one row of the 'injection_outcomes' table.
type InjectionOutcome struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RunID    string `gorm:"column:run_id;type:varchar(36);index" json:"run_id"`
	Kind     string `gorm:"column:kind;type:varchar(16)" json:"kind"`
	TargetID string `gorm:"column:target_id;type:varchar(64)" json:"target_id"`
	Status   string `gorm:"column:status;type:varchar(16)" json:"status"`
	Error    string `gorm:"column:error" json:"error,omitempty"`
	Issues   int    `gorm:"column:issues" json:"issues"`
}

// TableName overrides the gorm default.
func (InjectionOutcome) TableName() string {
	return "injection_outcomes"
}

// LedgerTables lists the tables the ledger needs.
var LedgerTables = []string{"injection_runs", "injection_outcomes"}

// Ledger stores injection reports.
type Ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger on db.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Migrate creates or updates the ledger tables.
func (l *Ledger) Migrate() error {
	return l.db.AutoMigrate(&InjectionRun{}, &InjectionOutcome{})
}

// Record stores a report and its outcomes in one transaction.
func (l *Ledger) Record(ctx context.Context, report *Report) error {
	run := InjectionRun{
		ID:         report.RunID,
		Status:     report.Status,
		Error:      report.Error,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Applied:    report.Summary.Applied,
		Skipped:    report.Summary.Skipped,
		Failed:     report.Summary.Failed,
		Issues:     report.Summary.Issues,
	}

	outcomes := make([]InjectionOutcome, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		outcomes = append(outcomes, InjectionOutcome{
			RunID:    report.RunID,
			Kind:     string(o.Kind),
			TargetID: o.ID,
			Status:   string(o.Status),
			Error:    o.Error,
			Issues:   len(o.Issues),
		})
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&run).Error; err != nil {
			return err
		}
		if len(outcomes) == 0 {
			return nil
		}
		return tx.Create(&outcomes).Error
	})
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", report.RunID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]InjectionRun, error) {
	var runs []InjectionRun
	if err := l.db.WithContext(ctx).Order("started_at desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return runs, nil
}

// Outcomes returns the stored outcomes of a run.
func (l *Ledger) Outcomes(ctx context.Context, runID string) ([]InjectionOutcome, error) {
	var outcomes []InjectionOutcome
	if err := l.db.WithContext(ctx).Where("run_id = ?", runID).Order("id").Find(&outcomes).Error; err != nil {
		return nil, fmt.Errorf("failed to query outcomes of run %s: %w", runID, err)
	}
	return outcomes, nil
}
