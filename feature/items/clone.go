package items

import (
	"fmt"
	"sort"

	"whitecore/core/gamedata"
	"whitecore/core/tree"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CloneResult describes a registered clone.
type CloneResult struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	// Whitelisted counts ids added to the clone's own slot filters.
	Whitelisted int `json:"whitelisted"`
	// Conflicts counts ids appended to the clone's ConflictingItems.
	Conflicts int `json:"conflicts"`
	// Issues lists overrides and slots that could not be applied cleanly.
	Issues []tree.Issue `json:"issues,omitempty"`
}

// Cloner registers mod items into host tables. A Cloner is bound to one pass and
// remembers the ids it registered.
type Cloner struct {
	tables     *gamedata.Tables
	logger     *zap.Logger
	validate   *validator.Validate
	registered map[string]struct{}
}

// NewCloner creates a cloner mutating tables.
func NewCloner(tables *gamedata.Tables, logger *zap.Logger) *Cloner {
	return &Cloner{
		tables:     tables,
		logger:     logger,
		validate:   validator.New(),
		registered: make(map[string]struct{}),
	}
}

// Clone copies def.Clone into a new template newID and registers it with a handbook
// entry. On error nothing is mutated.
func (c *Cloner) Clone(newID string, def *Definition) (*CloneResult, error) {
	if def == nil || def.Clone == "" || newID == "" {
		c.logger.Error("Invalid parameters passed to cloneItem", zap.String("item_id", newID))
		return nil, ErrInvalidArgs
	}
	l := c.logger.With(zap.String("item_id", newID), zap.String("clone", def.Clone))

	source, ok := c.tables.Template(def.Clone)
	if !ok {
		l.Error(fmt.Sprintf("Template item %s not found", def.Clone))
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, def.Clone)
	}

	if !def.Enable {
		l.Debug("Item disabled, skipping")
		return nil, ErrDisabled
	}

	if err := c.validate.Struct(def); err != nil {
		msg := formatValidation(err)
		l.Error("Invalid item definition", zap.String("reason", msg))
		return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, msg)
	}

	if _, exists := c.tables.Templates.Items[newID]; exists {
		if _, ours := c.registered[newID]; !ours {
			l.Error("Item id already exists in the host templates")
			return nil, fmt.Errorf("%w: %s", ErrIDCollision, newID)
		}
	}

	item := gamedata.Template(tree.CloneTree(source))
	item["_id"] = newID

	_, issues := tree.Merge(item, def.Overrides)
	for _, issue := range issues {
		logIssue(l, issue)
	}

	result := &CloneResult{ID: newID, Source: def.Clone, Issues: issues}

	props, ok := item.Props()
	if !ok {
		props = make(map[string]any)
		item["_props"] = props
	}

	for _, slot := range sortedSlotNames(def.Compatibilities) {
		ids := def.Compatibilities[slot]
		matched := false
		for _, entry := range entries(props, "Slots") {
			if slotName(entry) != slot {
				continue
			}
			matched = true
			filter, ok := firstFilter(entry)
			if !ok {
				addIssue(l, result, tree.Issue{
					Path:    "_props.Slots." + slot + "._props.filters",
					Kind:    tree.IssueMissingKey,
					Message: fmt.Sprintf("Slot %q has no filter, compatibilities not added.", slot),
				})
				continue
			}
			appendIDs(filter, "Filter", ids...)
			result.Whitelisted += len(ids)
		}
		if !matched {
			addIssue(l, result, tree.Issue{
				Path:    "_props.Slots." + slot,
				Kind:    tree.IssueMissingKey,
				Message: fmt.Sprintf("Error finding the slot: %q, compatibilities not added.", slot),
			})
		}
	}

	if len(def.Conflicts) > 0 {
		appendIDs(props, "ConflictingItems", def.Conflicts...)
		result.Conflicts = len(def.Conflicts)
	}

	c.tables.Templates.Items[newID] = item
	c.registered[newID] = struct{}{}

	c.tables.Templates.Handbook.Items = append(c.tables.Templates.Handbook.Items, gamedata.HandbookEntry{
		ID:       newID,
		ParentID: def.Handbook.ParentID,
		Price:    def.Handbook.Price,
	})

	l.Debug("Item cloned", zap.Int("issues", len(result.Issues)))
	return result, nil
}

func addIssue(l *zap.Logger, result *CloneResult, issue tree.Issue) {
	logIssue(l, issue)
	result.Issues = append(result.Issues, issue)
}

func logIssue(l *zap.Logger, issue tree.Issue) {
	if issue.Applied() {
		l.Warn(issue.Message, zap.String("path", issue.Path))
		return
	}
	l.Error(issue.Message, zap.String("path", issue.Path))
}

func sortedSlotNames(m map[string][]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
