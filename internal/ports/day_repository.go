package ports

import (
	"context"

	"doer/internal/domain"
)

// Regenerates the mocks of every package listed in .mockery.yaml
//go:generate go run github.com/vektra/mockery/v2@v2.53.3 --config ../../.mockery.yaml

// DayReader reads planned days
type DayReader interface {
	// Day returns the day for date, or an empty day if nothing is stored
	Day(ctx context.Context, date domain.Date) (domain.Day, error)
	// LastDate returns the newest stored date not after today
	LastDate(ctx context.Context, today domain.Date) (domain.Date, error)
}

// DayWriter persists a single day
type DayWriter interface {
	SetDay(ctx context.Context, date domain.Date, day domain.Day) error
}

// YearReader reads whole years
type YearReader interface {
	// Year returns every stored day of a calendar year, or an empty year
	Year(ctx context.Context, year int) (domain.Year, error)
	// Years lists the calendar years that have data, oldest first
	Years(ctx context.Context) ([]int, error)
}

// YearWriter replaces whole years
type YearWriter interface {
	SetYear(ctx context.Context, year int, days domain.Year) error
}

// DayRepository is the composite interface for one context
type DayRepository interface {
	DayReader
	DayWriter
	YearReader
	YearWriter
	Context() string
	Close() error
}

// DayRepositoryFactory opens the repository for a named context
type DayRepositoryFactory func(contextName string) (DayRepository, error)
