package checks

// Requirement is one entry of a database layout. It is satisfied when any of its paths
// exists; a path ending in a slash names a directory that must hold at least one file.
type Requirement struct {
	Name  string
	Paths []string
}

// HostLayout lists what the host database must contain.
var HostLayout = []Requirement{
	{Name: "templates/items.json", Paths: []string{"templates/items.json"}},
	{Name: "templates/handbook.json", Paths: []string{"templates/handbook.json"}},
	{Name: "locales/global/", Paths: []string{"locales/global/"}},
	{Name: "traders/", Paths: []string{"traders/"}},
}

// ModLayout lists what the mod database must contain.
var ModLayout = []Requirement{
	{Name: "items", Paths: []string{"items.json", "items.yaml", "items.yml", "items/"}},
	{Name: "traders/", Paths: []string{"traders/"}},
}
