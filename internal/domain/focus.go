package domain

// Break is a pause within a focus session. End is OpenEnd while the break
// is still going.
type Break struct {
	End   TimeOfDay
	Start TimeOfDay
}

// IsOpen reports whether the break has not ended yet
func (b Break) IsOpen() bool {
	return b.End == OpenEnd
}

// Focus is one contiguous "what I'm working on" session within a day
type Focus struct {
	Breaks []Break
	Name   string
	Start  TimeOfDay
}

// LastBreak returns the most recent break, or nil if there is none
func (f *Focus) LastBreak() *Break {
	if len(f.Breaks) == 0 {
		return nil
	}
	return &f.Breaks[len(f.Breaks)-1]
}

// InBreak reports whether the most recent break is still open
func (f *Focus) InBreak() bool {
	last := f.LastBreak()
	return last != nil && last.IsOpen()
}

func (f *Focus) startBreak(now TimeOfDay) error {
	if last := f.LastBreak(); last != nil {
		if last.IsOpen() || now <= last.End {
			return ErrBreakInProgress
		}
	}
	f.Breaks = append(f.Breaks, Break{Start: now, End: OpenEnd})
	return nil
}

func (f *Focus) endBreak(now TimeOfDay) error {
	last := f.LastBreak()
	if last == nil {
		return ErrNoBreak
	}
	if !last.IsOpen() {
		return ErrNoOpenBreak
	}
	last.End = now
	return nil
}
