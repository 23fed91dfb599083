// Package inject runs the WhiteCore injection pass against a host database.
//
// # Pass
//
// A Pass carries the host tables, the decoded mod database and the trader list through
// one run. Mod items are taken in id order, except that an item cloning another mod
// item waits for its source. For each one it clones the item, propagates compatibility
// and conflicts to the host templates and patches every language. It then merges the
// configured trader assorts. Each item and trader produces an Outcome; the outcomes are
// aggregated into a Report. A panic inside the pass aborts the rest of it and is
// recorded on the report instead of crashing the process.
//
// # Service
//
// Service.PostDBLoad loads both databases concurrently from a gamedata.Source, runs a
// Pass, records metrics and, when a ledger is configured, stores the report.
//
// # HTTP Endpoints
//
//   - GET /inject/report : Last report.
//   - POST /inject/run : Reload both databases and run a new pass.
//   - GET /inject/items/:id : Verification of one mod item against the last run.
//   - GET /inject/verify : Verification of every mod item.
//   - GET /inject/runs : Recent runs from the ledger.
//   - GET /inject/runs/:id/outcomes : Outcomes recorded for one run.
package inject
