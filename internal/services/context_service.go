package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"doer/internal/config"
	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/ports"
)

// summaryConcurrency bounds how many contexts are read at once
const summaryConcurrency = 4

// ContextService lists and switches the contexts under one store root
type ContextService struct {
	current  string
	factory  ports.DayRepositoryFactory
	root     string
	settings SettingsStore
}

// NewContextService creates a new ContextService. current is the context
// resolved for this run.
func NewContextService(root, current string, factory ports.DayRepositoryFactory, settings SettingsStore) *ContextService {
	return &ContextService{
		current:  current,
		factory:  factory,
		root:     root,
		settings: settings,
	}
}

// Current returns the context in use
func (s *ContextService) Current() string {
	return s.current
}

// List returns every context name, including the current one even when it
// has no directory yet.
func (s *ContextService) List(ctx context.Context) ([]string, error) {
	names, err := config.ListContexts(s.root)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(names, s.current) {
		names = append(names, s.current)
		slices.Sort(names)
	}
	return names, nil
}

// Set makes name the default context in the settings file
func (s *ContextService) Set(ctx context.Context, name string) error {
	repo, err := s.factory(name)
	if err != nil {
		return fmt.Errorf("failed to open context %q: %w", name, err)
	}
	if err := repo.Close(); err != nil {
		logging.Logger.Warn("Failed to close repository", "context", name, "error", err)
	}

	settings, err := s.settings.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Context = name
	if err := s.settings.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Context switched", "from", s.current, "to", name)
	s.current = name
	return nil
}

// Summaries reads the latest planned day of every context concurrently
func (s *ContextService) Summaries(ctx context.Context, today domain.Date) ([]ContextSummary, error) {
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ContextSummary, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			summary, err := s.summarize(gctx, name, today)
			if err != nil {
				return fmt.Errorf("context %q: %w", name, err)
			}
			summary.Current = name == s.current
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logging.Logger.Error("Failed to summarize contexts", "error", err)
		return nil, err
	}
	return summaries, nil
}

func (s *ContextService) summarize(ctx context.Context, name string, today domain.Date) (ContextSummary, error) {
	summary := ContextSummary{Name: name}

	repo, err := s.factory(name)
	if err != nil {
		return summary, err
	}
	defer repo.Close()

	last, err := repo.LastDate(ctx, today)
	if errors.Is(err, domain.ErrNoData) {
		return summary, nil
	}
	if err != nil {
		return summary, err
	}

	day, err := repo.Day(ctx, last)
	if err != nil {
		return summary, err
	}

	summary.LastDate = last
	summary.Total = len(day.Priorities)
	for _, p := range day.Priorities {
		if p.Done {
			summary.Done++
		}
	}
	return summary, nil
}
