package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Resolve returns the CPI rate for a year: the persisted record when one
	// exists, otherwise a live fetch. Fails with ErrRateUnavailable when
	// neither tier yields a usable rate.
	Resolve(ctx context.Context, year int) (*Resolved, error)
	List(ctx context.Context) ([]InflationRate, error)
}

var (
	ErrRateUnavailable = errors.New("rate_unavailable")
	ErrInvalidYear     = errors.New("invalid_year")
)
