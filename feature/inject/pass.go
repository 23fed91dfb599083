package inject

import (
	"errors"
	"fmt"
	"sort"

	"whitecore/core/gamedata"
	"whitecore/feature/items"
	"whitecore/feature/traders"

	"go.uber.org/zap"
)

// Pass is the state of one injection run. It is the only writer of Tables while Run
// executes and keeps no reference to them afterwards.
type Pass struct {
	RunID   string
	Tables  *gamedata.Tables
	Mod     *ModDatabase
	Traders []gamedata.TraderRef
	Options traders.Options
	Logger  *zap.Logger
}

// Run applies the mod to the tables and returns the report.
func (p *Pass) Run() (report *Report) {
	report = newReport(p.RunID)
	defer func() {
		if r := recover(); r != nil {
			report.abort(fmt.Errorf("panic during injection: %v", r))
			report.finish()
			p.Logger.Error("Error loading WhiteCore mod: " + report.Error)
		}
	}()

	if p.Tables == nil || p.Mod == nil {
		report.abort(ErrMissingDatabase)
		report.finish()
		p.Logger.Error("Error loading WhiteCore mod: " + report.Error)
		return report
	}

	modIDs := p.Mod.IDs()

	for _, id := range sortedErrorIDs(p.Mod.DecodeErrors) {
		err := p.Mod.DecodeErrors[id]
		p.Logger.Error("Invalid item definition", zap.String("item_id", id), zap.Error(err))
		report.add(Outcome{Kind: KindItem, ID: id, Status: StatusFailed, Error: err.Error()})
	}

	order, cyclic := items.CloneOrder(p.Mod.Items)
	cloner := items.NewCloner(p.Tables, p.Logger)
	for _, id := range order {
		report.add(p.applyItem(cloner, id, p.Mod.Items[id], modIDs))
	}
	for _, id := range cyclic {
		err := fmt.Errorf("%w: %s clones %s", items.ErrCloneCycle, id, p.Mod.Items[id].Clone)
		p.Logger.Error("Item clones itself through other mod items", zap.String("item_id", id), zap.Error(err))
		report.add(Outcome{Kind: KindItem, ID: id, Status: StatusFailed, Error: err.Error()})
	}

	merger := traders.NewMerger(p.Logger, p.Options)
	for _, ref := range p.Traders {
		out := Outcome{Kind: KindTrader, ID: ref.ID}
		result, err := merger.MergeAssort(p.Tables, p.Mod.Traders, ref.ID)
		if err != nil {
			out.Status = StatusFailed
			out.Error = err.Error()
		} else {
			out.Status = StatusApplied
			out.Assort = result
		}
		report.add(out)
	}

	report.finish()
	p.Logger.Info("------------------------")
	p.Logger.Info("White Core Loaded",
		zap.Int("applied", report.Summary.Applied),
		zap.Int("skipped", report.Summary.Skipped),
		zap.Int("failed", report.Summary.Failed))
	return report
}

func (p *Pass) applyItem(cloner *items.Cloner, id string, def *items.Definition, modIDs map[string]struct{}) Outcome {
	out := Outcome{Kind: KindItem, ID: id}

	result, err := cloner.Clone(id, def)
	switch {
	case errors.Is(err, items.ErrDisabled):
		out.Status = StatusSkipped
		out.Error = err.Error()
		return out
	case err != nil:
		out.Status = StatusFailed
		out.Error = err.Error()
		return out
	}

	prop := items.PropagateCompatibility(p.Tables, def.Clone, id, modIDs)

	out.Status = StatusApplied
	out.Clone = result
	out.Issues = result.Issues
	out.Propagation = &prop
	out.Languages = items.PatchLocales(p.Tables, id, def.Locales)
	return out
}

func sortedErrorIDs(m map[string]error) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
