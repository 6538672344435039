package services

import (
	"context"
	"fmt"

	"doer/internal/logging"
	"doer/internal/ports"
)

// MigrationService rewrites stored years: upgrading them to the current
// schema and merging one context into another
type MigrationService struct {
	repoFactory ports.DayRepositoryFactory
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(repoFactory ports.DayRepositoryFactory) *MigrationService {
	return &MigrationService{
		repoFactory: repoFactory,
	}
}

// UpgradeResult lists the years rewritten by UpgradeContext
type UpgradeResult struct {
	Years []int
}

// UpgradeContext reads every year of a context and writes it back, so all
// files carry the current schema version and priority format
func (s *MigrationService) UpgradeContext(ctx context.Context, contextName string) (*UpgradeResult, error) {
	logging.Logger.Info("Upgrading context", "context", contextName)

	repo, err := s.repoFactory(contextName)
	if err != nil {
		return nil, fmt.Errorf("failed to open context %q: %w", contextName, err)
	}
	defer repo.Close()

	years, err := repo.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	result := &UpgradeResult{}
	for _, year := range years {
		days, err := repo.Year(ctx, year)
		if err != nil {
			logging.Logger.Error("Failed to read year", "context", contextName, "year", year, "error", err)
			return result, fmt.Errorf("failed to read %d: %w", year, err)
		}
		if err := repo.SetYear(ctx, year, days); err != nil {
			logging.Logger.Error("Failed to write year", "context", contextName, "year", year, "error", err)
			return result, fmt.Errorf("failed to write %d: %w", year, err)
		}
		result.Years = append(result.Years, year)
	}

	logging.Logger.Info("Context upgraded", "context", contextName, "years", len(result.Years))
	return result, nil
}

// MergeContextsParams contains parameters for merging two contexts
type MergeContextsParams struct {
	Dest      string
	Overwrite bool
	Source    string
}

// MergeContextsResult counts what a merge did
type MergeContextsResult struct {
	CopiedDays  int
	SkippedDays int
}

// MergeContexts copies every day of the source context into the destination.
// Days already planned in the destination are kept unless Overwrite is set.
// The source context is left untouched.
func (s *MigrationService) MergeContexts(ctx context.Context, params MergeContextsParams) (*MergeContextsResult, error) {
	if params.Source == params.Dest {
		return nil, fmt.Errorf("cannot merge context %q into itself", params.Source)
	}

	logging.Logger.Info("Merging contexts",
		"from", params.Source,
		"to", params.Dest,
		"overwrite", params.Overwrite)

	sourceRepo, err := s.repoFactory(params.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open context %q: %w", params.Source, err)
	}
	defer sourceRepo.Close()

	destRepo, err := s.repoFactory(params.Dest)
	if err != nil {
		return nil, fmt.Errorf("failed to open context %q: %w", params.Dest, err)
	}
	defer destRepo.Close()

	years, err := sourceRepo.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}

	result := &MergeContextsResult{}
	for _, year := range years {
		if err := s.mergeYear(ctx, sourceRepo, destRepo, year, params.Overwrite, result); err != nil {
			logging.Logger.Error("Failed to merge year", "year", year, "error", err)
			return result, err
		}
	}

	logging.Logger.Info("Contexts merged",
		"copied", result.CopiedDays,
		"skipped", result.SkippedDays)
	return result, nil
}

func (s *MigrationService) mergeYear(
	ctx context.Context,
	source, dest ports.DayRepository,
	year int,
	overwrite bool,
	result *MergeContextsResult,
) error {
	sourceDays, err := source.Year(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to read %d from %q: %w", year, source.Context(), err)
	}
	destDays, err := dest.Year(ctx, year)
	if err != nil {
		return fmt.Errorf("failed to read %d from %q: %w", year, dest.Context(), err)
	}

	copied := 0
	for date, day := range sourceDays {
		if existing, ok := destDays[date]; ok && !existing.IsEmpty() && !overwrite {
			logging.Logger.Debug("Keeping existing day", "date", date)
			result.SkippedDays++
			continue
		}
		destDays[date] = day
		copied++
	}

	if copied == 0 {
		return nil
	}
	if err := dest.SetYear(ctx, year, destDays); err != nil {
		return fmt.Errorf("failed to write %d to %q: %w", year, dest.Context(), err)
	}
	result.CopiedDays += copied
	return nil
}
