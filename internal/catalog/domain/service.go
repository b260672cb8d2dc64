package domain

import (
	"context"
	"errors"
)

type Service interface {
	ListGrouped(ctx context.Context) ([]GuideGroup, error)
}

// GuideGroup is the shape the pricing-guide pages consume: active entries
// grouped by the page that displays them, then by section.
type GuideGroup struct {
	GuideKey string         `json:"guide_key"`
	Sections []SectionGroup `json:"sections"`
}

type SectionGroup struct {
	SectionKey string         `json:"section_key"`
	Entries    []PricingEntry `json:"entries"`
}

var (
	ErrCatalogUnreadable = errors.New("catalog_unreadable")
	ErrNotFound          = errors.New("not_found")
)
