// Package config provides configuration management for the WhiteCore injector.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: run ledger connection details (sqlite or MySQL)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Mod: host and mod database locations, source kind, traders to merge
//   - Log: Logging level and format
//
// Every key can be overridden from the environment as SECTION_KEY, for example
// MOD_SOURCE=bucket or MOD_TRADERS=painter=668aaff35fd574b6dcc4a686.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Mod.DatabasePath())
package config
