package services

import (
	"doer/internal/config"
	"doer/internal/domain"
)

// SettingsStore loads and saves the user settings file
type SettingsStore interface {
	Load() (*config.Settings, error)
	Save(settings *config.Settings) error
}

// ContextSummary describes the latest planned day of one context
type ContextSummary struct {
	Current  bool
	Done     int
	LastDate domain.Date
	Name     string
	Total    int
}

// HasData reports whether the context has any planned day
func (c ContextSummary) HasData() bool {
	return !c.LastDate.IsZero()
}
