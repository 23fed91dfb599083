package items

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"whitecore/core/gamedata"

	"github.com/go-playground/validator/v10"
)

// Definition is one entry of the mod's items table, keyed by the new item id.
type Definition struct {
	// Clone is the id of the host template to copy.
	Clone string `mapstructure:"clone" json:"clone" validate:"required"`
	// Enable gates registration of the item.
	Enable bool `mapstructure:"enable" json:"enable"`
	// Overrides is merged into the copied template.
	Overrides map[string]any `mapstructure:"items" json:"items,omitempty"`
	// Compatibilities maps a slot name of the new item to ids it should accept.
	Compatibilities map[string][]string `mapstructure:"wcCompatibilities" json:"wcCompatibilities,omitempty" validate:"dive,dive,required"`
	// Conflicts lists ids appended to the new item's ConflictingItems.
	Conflicts []string `mapstructure:"wcConflicts" json:"wcConflicts,omitempty" validate:"dive,required"`
	// Handbook places the item in the handbook.
	Handbook Handbook `mapstructure:"handbook" json:"handbook"`
	// Locales holds the display strings of the item.
	Locales *Locales `mapstructure:"locales" json:"locales" validate:"required"`
}

// Handbook is the handbook placement of a mod item.
type Handbook struct {
	ParentID string  `mapstructure:"ParentId" json:"ParentId" validate:"required"`
	Price    float64 `mapstructure:"Price" json:"Price" validate:"gte=0"`
}

// Locales holds the strings written to every language.
type Locales struct {
	Name        string `mapstructure:"Name" json:"Name" validate:"required"`
	ShortName   string `mapstructure:"Shortname" json:"Shortname"`
	Description string `mapstructure:"Description" json:"Description"`
}

// DecodeDefinitions decodes the mod's items table. Entries that fail to decode are
// returned in errs and left out of defs.
func DecodeDefinitions(raw map[string]any) (defs map[string]*Definition, errs map[string]error) {
	defs = make(map[string]*Definition, len(raw))
	errs = make(map[string]error)
	for id, value := range raw {
		var def Definition
		if err := gamedata.DecodeInto(value, &def); err != nil {
			errs[id] = fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
			continue
		}
		defs[id] = &def
	}
	return defs, errs
}

// SortedIDs returns the ids of defs in ascending order.
func SortedIDs(defs map[string]*Definition) []string {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// formatValidation turns validator errors into a single readable line.
func formatValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Definition.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
