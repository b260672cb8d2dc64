package service

import (
	catalogdomain "github.com/hillcosite/priceguide/internal/catalog/domain"
	"github.com/hillcosite/priceguide/internal/inflation"
	pipelinedomain "github.com/hillcosite/priceguide/internal/pipeline/domain"
)

// ComputeUpdates applies the resolved rate to every entry and returns the
// full before/after set. Pure: no storage access, no side effects. Dry-run
// and live mode both go through here, which is what makes previews
// trustworthy.
func ComputeUpdates(entries []catalogdomain.PricingEntry, ratePercent float64) []pipelinedomain.UpdateResult {
	updates := make([]pipelinedomain.UpdateResult, 0, len(entries))
	for _, entry := range entries {
		newBaseMin := inflation.Apply(entry.BaseMinValue, ratePercent)
		newBaseMax := inflation.ApplyOptional(entry.BaseMaxValue, ratePercent)
		newDisplayMin := inflation.RoundToDisplay(newBaseMin)
		newDisplayMax := inflation.RoundToDisplayOptional(newBaseMax)

		updates = append(updates, pipelinedomain.UpdateResult{
			EntryID:       entry.ID,
			Name:          entry.Name(),
			OldPrice:      inflation.FormatPrice(entry.DisplayMinValue, entry.DisplayMaxValue),
			NewPrice:      inflation.FormatPrice(newDisplayMin, newDisplayMax),
			NewBaseMin:    newBaseMin,
			NewBaseMax:    newBaseMax,
			NewDisplayMin: newDisplayMin,
			NewDisplayMax: newDisplayMax,
		})
	}
	return updates
}
