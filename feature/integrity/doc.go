// Package integrity provides health checks for the databases WhiteCore reads and writes.
//
// Unlike the 'inject' package which verifies the result of a pass item by item,
// this package validates the structural requirements the pass depends on.
//
// # Checks Provided
//
//   - Host: The host database holds templates/items.json, templates/handbook.json, locales/global/ and traders/.
//   - Mod: The mod database holds item definitions (items.json, items.yaml or items/) and traders/.
//   - Ledger: The run ledger tables match the ledger models (columns, types).
//
// With a bucket source the bucket itself must exist before the layout is checked.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/host : Runs host layout check.
//   - GET /integrity/mod : Runs mod layout check.
//   - GET /integrity/ledger : Runs ledger schema check.
package integrity
