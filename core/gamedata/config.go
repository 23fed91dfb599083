package gamedata

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Config holds the locations of the host and mod databases and the mod settings.
type Config struct {
	// HostPath is the root of the host server database.
	HostPath string `mapstructure:"host_path" default:"SPT_Data/Server/database"`
	// ModsRoot is the directory holding installed mods.
	ModsRoot string `mapstructure:"mods_root" default:"user/mods"`
	// ModFolder is the folder name of the mod under ModsRoot.
	ModFolder string `mapstructure:"mod_folder" default:"MoxoPixel-WhiteCore"`
	// OutputPath is where patched tables are written.
	OutputPath string `mapstructure:"output_path" default:"out/database"`
	// Source selects where databases are read from (fs, bucket).
	Source string `mapstructure:"source" default:"fs"`
	// Traders lists the traders whose assorts are merged, as name=id pairs.
	Traders string `mapstructure:"traders" default:"painter=668aaff35fd574b6dcc4a686"`
	// DedupeAssort skips mod assort items whose _id the host trader already sells.
	DedupeAssort bool `mapstructure:"dedupe_assort" default:"false"`
}

const (
	SourceFS     = "fs"
	SourceBucket = "bucket"
)

// IsValidSource checks if the configured source kind is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFS, SourceBucket:
		return true
	default:
		return false
	}
}

// ModPath returns the mod folder, with a trailing slash.
func (c Config) ModPath() string {
	return path.Join(c.ModsRoot, c.ModFolder) + "/"
}

// DatabasePath returns the mod database root.
func (c Config) DatabasePath() string {
	return c.ModPath() + "database/"
}

// TraderRef names a trader by its configured alias and database id.
type TraderRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// TraderRefs parses Traders. Entries are returned sorted by name.
func (c Config) TraderRefs() ([]TraderRef, error) {
	var refs []TraderRef
	for _, entry := range strings.Split(c.Traders, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, id, ok := strings.Cut(entry, "=")
		name, id = strings.TrimSpace(name), strings.TrimSpace(id)
		if !ok || name == "" || id == "" {
			return nil, fmt.Errorf("invalid trader entry %q, expected name=id", entry)
		}
		refs = append(refs, TraderRef{Name: name, ID: id})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
