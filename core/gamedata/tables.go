package gamedata

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-json"
)

// Template is a host item template keyed by attribute name.
type Template map[string]any

// ID returns the template's _id.
func (t Template) ID() string {
	id, _ := t["_id"].(string)
	return id
}

// Props returns the _props tree of the template.
func (t Template) Props() (map[string]any, bool) {
	props, ok := t["_props"].(map[string]any)
	return props, ok
}

// Tables is the subset of the host database the injector reads and mutates.
type Tables struct {
	Templates Templates          `mapstructure:"templates"`
	Locales   Locales            `mapstructure:"locales"`
	Traders   map[string]*Trader `mapstructure:"traders"`
}

// Templates holds templates/items.json and templates/handbook.json.
type Templates struct {
	Items    map[string]Template `mapstructure:"items"`
	Handbook *Handbook           `mapstructure:"handbook"`
}

// Handbook is the in-game item catalogue.
type Handbook struct {
	Categories []map[string]any `mapstructure:"Categories" json:"Categories"`
	Items      []HandbookEntry  `mapstructure:"Items" json:"Items"`
}

// HandbookEntry lists one item under a handbook category.
type HandbookEntry struct {
	ID       string  `mapstructure:"Id" json:"Id"`
	ParentID string  `mapstructure:"ParentId" json:"ParentId"`
	Price    float64 `mapstructure:"Price" json:"Price"`
}

// Locales holds the translated strings of every language.
type Locales struct {
	Global map[string]map[string]string `mapstructure:"global"`
}

// Trader is one traders/<id> directory.
type Trader struct {
	Base   map[string]any `mapstructure:"base"`
	Assort *Assort        `mapstructure:"assort"`
	Extra  map[string]any `mapstructure:",remain"`
}

// Assort is the inventory a trader sells.
type Assort struct {
	Items           []map[string]any `mapstructure:"items"`
	BarterScheme    map[string]any   `mapstructure:"barter_scheme"`
	LoyalLevelItems map[string]any   `mapstructure:"loyal_level_items"`
	// Extra keeps keys this package does not interpret, such as nextResupply.
	Extra map[string]any `mapstructure:",remain"`
}

// MarshalJSON writes the assort with its unknown keys preserved.
func (a Assort) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Extra)+3)
	for k, v := range a.Extra {
		out[k] = v
	}
	items := a.Items
	if items == nil {
		items = []map[string]any{}
	}
	out["items"] = items
	out["barter_scheme"] = nonNil(a.BarterScheme)
	out["loyal_level_items"] = nonNil(a.LoyalLevelItems)
	return json.Marshal(out)
}

// HasItem reports whether the assort already sells an instance with the given _id.
func (a *Assort) HasItem(id string) bool {
	for _, item := range a.Items {
		if itemID, _ := item["_id"].(string); itemID == id {
			return true
		}
	}
	return false
}

// Decode converts a host tree loaded by the Importer into Tables.
func Decode(raw map[string]any) (*Tables, error) {
	var tables Tables
	if err := DecodeInto(raw, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode host tables: %w", err)
	}
	tables.normalize()
	return &tables, nil
}

// DecodeInto decodes a loaded tree into a tagged struct. Scalars are converted
// loosely so YAML and JSON authored files decode alike.
func DecodeInto(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// Template looks up a template by id.
func (t *Tables) Template(id string) (Template, bool) {
	tpl, ok := t.Templates.Items[id]
	return tpl, ok
}

// Languages returns the loaded locale languages, sorted.
func (t *Tables) Languages() []string {
	langs := make([]string, 0, len(t.Locales.Global))
	for lang := range t.Locales.Global {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HandbookEntries returns the handbook entries registered for id.
func (t *Tables) HandbookEntries(id string) []HandbookEntry {
	var out []HandbookEntry
	for _, e := range t.Templates.Handbook.Items {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

func (t *Tables) normalize() {
	if t.Templates.Items == nil {
		t.Templates.Items = make(map[string]Template)
	}
	if t.Templates.Handbook == nil {
		t.Templates.Handbook = &Handbook{}
	}
	if t.Locales.Global == nil {
		t.Locales.Global = make(map[string]map[string]string)
	}
	for lang, strs := range t.Locales.Global {
		if strs == nil {
			t.Locales.Global[lang] = make(map[string]string)
		}
	}
	if t.Traders == nil {
		t.Traders = make(map[string]*Trader)
	}
}

func nonNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
