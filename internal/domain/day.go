package domain

// Day is the planning and time-tracking record for one calendar date.
// The zero value is an empty day.
type Day struct {
	EndTime    *TimeOfDay
	Log        []Focus
	Notes      []string
	Priorities []Priority
}

// Year maps the dates of one calendar year to their days
type Year map[Date]Day

// Focus returns the current focus, which is always the latest log entry
func (d *Day) Focus() *Focus {
	if len(d.Log) == 0 {
		return nil
	}
	return &d.Log[len(d.Log)-1]
}

// SetFocus starts a new focus session unless name is already the current focus
func (d *Day) SetFocus(name string) {
	if current := d.Focus(); current != nil && current.Name == name {
		return
	}
	d.Log = append(d.Log, Focus{Name: name, Start: Now()})
}

// StartBreak opens a break on the current focus
func (d *Day) StartBreak() error {
	focus := d.Focus()
	if focus == nil {
		return ErrNoFocus
	}
	return focus.startBreak(Now())
}

// EndBreak closes the open break on the current focus
func (d *Day) EndBreak() error {
	focus := d.Focus()
	if focus == nil {
		return ErrNoFocus
	}
	return focus.endBreak(Now())
}

// End marks the day as finished. Ending again moves the end time.
func (d *Day) End() {
	now := Now()
	d.EndTime = &now
}

// IsEnded reports whether End has been called. It is advisory only.
func (d *Day) IsEnded() bool {
	return d.EndTime != nil
}

func (d *Day) AddNote(note string) {
	d.Notes = append(d.Notes, note)
}

// SetDone ticks or unticks the priority at index. Out-of-range indexes leave
// the day unchanged and are reported through the result.
func (d *Day) SetDone(index int, done bool) TickResult {
	result := TickResult{Index: index, MaxIndex: len(d.Priorities) - 1}
	if index < 0 || index > result.MaxIndex {
		return result
	}
	d.Priorities[index].Done = done
	result.Applied = true
	return result
}

// PriorityNames returns the names of the day's priorities in rank order
func (d *Day) PriorityNames() []string {
	names := make([]string, len(d.Priorities))
	for i, p := range d.Priorities {
		names[i] = p.Name
	}
	return names
}

// IsEmpty reports whether nothing has been recorded for the day
func (d *Day) IsEmpty() bool {
	return len(d.Priorities) == 0 && len(d.Log) == 0 && len(d.Notes) == 0 && d.EndTime == nil
}

// Clone returns a deep copy of the day
func (d Day) Clone() Day {
	c := Day{
		Notes:      cloneSlice(d.Notes),
		Priorities: cloneSlice(d.Priorities),
	}
	if d.EndTime != nil {
		end := *d.EndTime
		c.EndTime = &end
	}
	if d.Log != nil {
		c.Log = make([]Focus, len(d.Log))
		for i, f := range d.Log {
			c.Log[i] = Focus{Name: f.Name, Start: f.Start, Breaks: cloneSlice(f.Breaks)}
		}
	}
	return c
}

// Clone returns a deep copy of the year
func (y Year) Clone() Year {
	c := make(Year, len(y))
	for date, day := range y {
		c[date] = day.Clone()
	}
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
