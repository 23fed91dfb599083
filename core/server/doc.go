// Package server holds the HTTP server configuration.
//
// The serve command starts a Fiber application exposing the last injection report,
// per-item verification, integrity checks and metrics. This package defines the
// listen port and the API key protecting those routes.
package server
