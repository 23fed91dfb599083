// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure the connection used by the injection
// run ledger. Two drivers are supported: sqlite (the default, a local file) and MySQL
// for shared deployments.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The integrity
// feature uses it to confirm the ledger tables match the expected models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Ledger disabled", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "injection_runs")
package database
