// Package gamedata loads, holds and writes the game server database the injector mutates.
//
// # Sources
//
// A Source exposes a directory tree of data files. Two implementations exist:
//   - FSSource: a local directory, through afero (tests use afero.NewMemMapFs)
//   - BucketSource: an object storage prefix, through core/storage
//
// # Importer
//
// Importer.LoadRecursive reads every .json, .yaml and .yml file under a root and nests
// the decoded contents by path: "templates/items.json" becomes tree["templates"]["items"].
//
// # Tables
//
// Decode turns the host tree into Tables: item templates, the handbook, global locales
// and trader assorts. Item templates stay schema-less so unknown attributes survive a
// round trip.
//
// # Writer
//
// Writer persists the patched tables through a Sink, either a local directory written
// atomically with renameio or an object storage bucket.
package gamedata
