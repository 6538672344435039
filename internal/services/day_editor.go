package services

import (
	"context"
	"fmt"
	"sync"

	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/ports"
)

// DayEditor is a read-modify-write session on one day. The day is saved
// when Close is called, and only the first Close saves.
type DayEditor struct {
	closeErr  error
	closeOnce sync.Once
	ctx       context.Context
	date      domain.Date
	day       domain.Day
	writer    ports.DayWriter
}

func newDayEditor(ctx context.Context, writer ports.DayWriter, date domain.Date, day domain.Day) *DayEditor {
	return &DayEditor{
		ctx:    context.WithoutCancel(ctx),
		date:   date,
		day:    day,
		writer: writer,
	}
}

// Date returns the date being edited
func (e *DayEditor) Date() domain.Date {
	return e.date
}

// Day returns the day for in-place mutation
func (e *DayEditor) Day() *domain.Day {
	return &e.day
}

// Close saves the day. Later calls return the result of the first one.
func (e *DayEditor) Close() error {
	e.closeOnce.Do(func() {
		logging.Logger.Debug("Saving edited day", "date", e.date)
		if err := e.writer.SetDay(e.ctx, e.date, e.day); err != nil {
			logging.Logger.Error("Failed to save edited day", "date", e.date, "error", err)
			e.closeErr = fmt.Errorf("failed to save %s: %w", e.date, err)
		}
	})
	return e.closeErr
}
