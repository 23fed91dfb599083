// Package traders merges mod trader assorts into the host traders.
package traders

import (
	"errors"
	"fmt"

	"whitecore/core/gamedata"

	"go.uber.org/zap"
)

// ErrInvalidAssort is returned when the host or mod assort of a trader is missing.
var ErrInvalidAssort = errors.New("invalid trader assort data")

// Options controls assort merging.
type Options struct {
	// SkipExisting drops mod items whose _id the host assort already has, along with
	// their barter scheme and loyalty level. Without it a second merge duplicates items.
	SkipExisting bool
}

// MergeResult counts what a merge added.
type MergeResult struct {
	TraderID     string `json:"trader_id"`
	Items        int    `json:"items"`
	Skipped      int    `json:"skipped"`
	BarterScheme int    `json:"barter_scheme"`
	LoyalLevels  int    `json:"loyal_levels"`
}

// Merger merges assorts into host tables.
type Merger struct {
	logger *zap.Logger
	opts   Options
}

// NewMerger creates a new merger.
func NewMerger(logger *zap.Logger, opts Options) *Merger {
	return &Merger{logger: logger, opts: opts}
}

// MergeAssort appends the mod assort items of traderID to the host assort and sets
// barter schemes and loyalty levels by instance id.
func (m *Merger) MergeAssort(tables *gamedata.Tables, mod map[string]*gamedata.Trader, traderID string) (*MergeResult, error) {
	host, ok := tables.Traders[traderID]
	if !ok || host == nil || host.Assort == nil {
		m.logger.Error(fmt.Sprintf("Invalid trader assort data for trader: %s", traderID))
		return nil, fmt.Errorf("%w: host trader %s", ErrInvalidAssort, traderID)
	}
	modTrader, ok := mod[traderID]
	if !ok || modTrader == nil || modTrader.Assort == nil {
		m.logger.Error(fmt.Sprintf("Invalid trader assort data for trader: %s", traderID))
		return nil, fmt.Errorf("%w: mod trader %s", ErrInvalidAssort, traderID)
	}

	dst, src := host.Assort, modTrader.Assort
	result := &MergeResult{TraderID: traderID}
	skip := make(map[string]struct{})

	for _, item := range src.Items {
		id, _ := item["_id"].(string)
		if m.opts.SkipExisting && id != "" && dst.HasItem(id) {
			skip[id] = struct{}{}
			result.Skipped++
			continue
		}
		dst.Items = append(dst.Items, item)
		result.Items++
	}

	if dst.BarterScheme == nil {
		dst.BarterScheme = make(map[string]any)
	}
	for id, scheme := range src.BarterScheme {
		if _, skipped := skip[id]; skipped {
			continue
		}
		dst.BarterScheme[id] = scheme
		result.BarterScheme++
	}

	if dst.LoyalLevelItems == nil {
		dst.LoyalLevelItems = make(map[string]any)
	}
	for id, level := range src.LoyalLevelItems {
		if _, skipped := skip[id]; skipped {
			continue
		}
		dst.LoyalLevelItems[id] = level
		result.LoyalLevels++
	}

	m.logger.Debug("Trader assort merged",
		zap.String("trader", traderID),
		zap.Int("items", result.Items),
		zap.Int("skipped", result.Skipped))
	return result, nil
}
