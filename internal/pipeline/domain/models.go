package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// RunRequest triggers one inflation pipeline run. DryRun computes and
// returns every change without writing anything and without notifying.
type RunRequest struct {
	Year   int
	DryRun bool
}

// UpdateResult is the before/after picture for one catalog entry. It is
// computed identically in dry-run and live mode, so a preview shows exactly
// what a live run would commit.
type UpdateResult struct {
	EntryID       snowflake.ID `json:"entry_id"`
	Name          string       `json:"name"`
	OldPrice      string       `json:"old_price"`
	NewPrice      string       `json:"new_price"`
	NewBaseMin    float64      `json:"new_base_min"`
	NewBaseMax    *float64     `json:"new_base_max,omitempty"`
	NewDisplayMin float64      `json:"new_display_min"`
	NewDisplayMax *float64     `json:"new_display_max,omitempty"`
}

// RunResult is the terminal payload of a pipeline run.
type RunResult struct {
	Success       bool           `json:"success"`
	DryRun        bool           `json:"dryRun"`
	Year          int            `json:"year"`
	CPIRate       float64        `json:"cpiRate"`
	RateSource    string         `json:"rateSource"`
	PricesUpdated int            `json:"pricesUpdated"`
	Updates       []UpdateResult `json:"updates"`
	SampleChanges []UpdateResult `json:"sampleChanges"`
}

type Service interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}

var (
	// ErrCommitFailed marks a live run where one or more entry writes failed.
	// Entries written before the failure stay written; operators consult the
	// automation log before retrying.
	ErrCommitFailed = errors.New("commit_failed")
)
