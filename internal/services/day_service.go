package services

import (
	"context"
	"errors"
	"fmt"

	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/ports"
)

// DayService plans and tracks the days of one context
type DayService struct {
	repo ports.DayRepository
}

// NewDayService creates a new DayService
func NewDayService(repo ports.DayRepository) *DayService {
	return &DayService{
		repo: repo,
	}
}

// Context returns the name of the context the service works on
func (s *DayService) Context() string {
	return s.repo.Context()
}

// Day returns the day for date. Unknown dates are empty days.
func (s *DayService) Day(ctx context.Context, date domain.Date) (domain.Day, error) {
	day, err := s.repo.Day(ctx, date)
	if err != nil {
		return domain.Day{}, fmt.Errorf("failed to load %s: %w", date, err)
	}
	return day, nil
}

// OpenEditor loads the day for date and returns an editor that saves it on Close
func (s *DayService) OpenEditor(ctx context.Context, date domain.Date) (*DayEditor, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	return newDayEditor(ctx, s.repo, date, day), nil
}

// Edit runs fn on the day for date and saves the day afterwards, also when
// fn fails or panics. Errors from fn and from saving are joined.
func (s *DayService) Edit(ctx context.Context, date domain.Date, fn func(day *domain.Day) error) (err error) {
	editor, err := s.OpenEditor(ctx, date)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if closeErr := editor.Close(); closeErr != nil {
				logging.Logger.Error("Failed to save day after panic", "date", date, "error", closeErr)
			}
			panic(r)
		}
		err = errors.Join(err, editor.Close())
	}()

	return fn(editor.Day())
}

// editDay is Edit that also returns the resulting day
func (s *DayService) editDay(ctx context.Context, date domain.Date, fn func(day *domain.Day) error) (domain.Day, error) {
	var result domain.Day
	err := s.Edit(ctx, date, func(day *domain.Day) error {
		err := fn(day)
		result = *day
		return err
	})
	return result, err
}

// PlanPriorities replaces the day's priorities with the ordered list, keeping
// at most domain.MaxPriorities of them.
func (s *DayService) PlanPriorities(ctx context.Context, date domain.Date, ordered []domain.Priority) (domain.Day, error) {
	if len(ordered) > domain.MaxPriorities {
		logging.Logger.Info("Dropping priorities over the limit", "date", date, "count", len(ordered))
		ordered = ordered[:domain.MaxPriorities]
	}

	logging.Logger.Info("Planning priorities", "date", date, "count", len(ordered))
	return s.editDay(ctx, date, func(day *domain.Day) error {
		if len(ordered) == 0 {
			day.Priorities = nil
			return nil
		}
		day.Priorities = append([]domain.Priority(nil), ordered...)
		return nil
	})
}

// CopyPriorities copies the priorities of from onto to, replacing the
// target's priorities. With openOnly, ticked priorities are left behind.
func (s *DayService) CopyPriorities(ctx context.Context, from, to domain.Date, openOnly bool) (domain.Day, error) {
	source, err := s.Day(ctx, from)
	if err != nil {
		return domain.Day{}, err
	}

	var priorities []domain.Priority
	for _, p := range source.Priorities {
		if openOnly && p.Done {
			continue
		}
		priorities = append(priorities, p)
	}

	logging.Logger.Info("Copying priorities", "from", from, "to", to, "count", len(priorities))
	return s.editDay(ctx, to, func(day *domain.Day) error {
		day.Priorities = priorities
		return nil
	})
}

// Tick marks the priority at index (0-based) as done
func (s *DayService) Tick(ctx context.Context, date domain.Date, index int) (domain.TickResult, error) {
	return s.setDone(ctx, date, index, true)
}

// Untick marks the priority at index (0-based) as not done
func (s *DayService) Untick(ctx context.Context, date domain.Date, index int) (domain.TickResult, error) {
	return s.setDone(ctx, date, index, false)
}

// setDone saves only when the index is in range
func (s *DayService) setDone(ctx context.Context, date domain.Date, index int, done bool) (domain.TickResult, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return domain.TickResult{}, err
	}

	result := day.SetDone(index, done)
	if !result.Applied {
		logging.Logger.Info("Priority index out of range", "date", date, "index", index, "max", result.MaxIndex)
		return result, nil
	}

	if err := s.repo.SetDay(ctx, date, day); err != nil {
		logging.Logger.Error("Failed to save priority state", "date", date, "index", index, "error", err)
		return result, fmt.Errorf("failed to save %s: %w", date, err)
	}
	return result, nil
}

// SetFocus makes name the current focus
func (s *DayService) SetFocus(ctx context.Context, date domain.Date, name string) (domain.Day, error) {
	logging.Logger.Info("Setting focus", "date", date, "focus", name)
	return s.editDay(ctx, date, func(day *domain.Day) error {
		day.SetFocus(name)
		return nil
	})
}

// FocusPriority focuses on the priority at index (0-based). An index out of
// range changes nothing and is reported through the result.
func (s *DayService) FocusPriority(ctx context.Context, date domain.Date, index int) (domain.TickResult, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return domain.TickResult{}, err
	}

	result := domain.TickResult{Index: index, MaxIndex: len(day.Priorities) - 1}
	if index < 0 || index > result.MaxIndex {
		return result, nil
	}

	if _, err := s.SetFocus(ctx, date, day.Priorities[index].Name); err != nil {
		return result, err
	}
	result.Applied = true
	return result, nil
}

// StartBreak pauses the current focus
func (s *DayService) StartBreak(ctx context.Context, date domain.Date) (domain.Day, error) {
	return s.editDay(ctx, date, func(day *domain.Day) error {
		if err := day.StartBreak(); err != nil {
			return fmt.Errorf("failed to start break: %w", err)
		}
		return nil
	})
}

// EndBreak resumes the current focus
func (s *DayService) EndBreak(ctx context.Context, date domain.Date) (domain.Day, error) {
	return s.editDay(ctx, date, func(day *domain.Day) error {
		if err := day.EndBreak(); err != nil {
			return fmt.Errorf("failed to end break: %w", err)
		}
		return nil
	})
}

// EndDay records the end of the working day
func (s *DayService) EndDay(ctx context.Context, date domain.Date) (domain.Day, error) {
	logging.Logger.Info("Ending day", "date", date)
	return s.editDay(ctx, date, func(day *domain.Day) error {
		day.End()
		return nil
	})
}

// AddNote appends a note to the day
func (s *DayService) AddNote(ctx context.Context, date domain.Date, note string) (domain.Day, error) {
	return s.editDay(ctx, date, func(day *domain.Day) error {
		day.AddNote(note)
		return nil
	})
}

// LastDate returns the newest planned date up to today
func (s *DayService) LastDate(ctx context.Context) (domain.Date, error) {
	date, err := s.repo.LastDate(ctx, domain.Today())
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			return domain.Date{}, err
		}
		return domain.Date{}, fmt.Errorf("failed to find last date: %w", err)
	}
	return date, nil
}
