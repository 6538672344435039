package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"doer/internal/domain"
)

// yearDocument is the on-disk form of a year file
type yearDocument struct {
	Version string                 `json:"version"`
	Days    map[string]dayDocument `json:"days"`
}

type dayDocument struct {
	Priorities []json.RawMessage `json:"priorities"`
	Log        []focusDocument   `json:"log"`
	Notes      []string          `json:"notes"`
	EndTime    *string           `json:"end_time,omitempty"`
}

type priorityDocument struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type focusDocument struct {
	Name   string          `json:"name"`
	Start  string          `json:"start"`
	Breaks []breakDocument `json:"breaks"`
}

type breakDocument struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// EncodeYear renders days as a year document stamped with version.
// Empty sequences are written as [] and the end time only when set. Days
// the current schema would reject (e.g. an unnamed priority) are refused.
func EncodeYear(days domain.Year, version string) ([]byte, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid schema version %q: %w", version, err)
	}
	if isLegacyPriorityFormat(v) {
		return nil, fmt.Errorf("cannot write schema version %s: priorities need at least %s", version, legacyPriorityCutoff)
	}

	doc := yearDocument{
		Version: version,
		Days:    make(map[string]dayDocument, len(days)),
	}
	for date, day := range days {
		d, err := toDayDocument(day)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", date, err)
		}
		doc.Days[date.String()] = d
	}

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal year: %w", err)
	}
	if err := checkEncoded(data); err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// checkEncoded holds written documents to the schema DecodeYear reads with,
// so a file is never written that cannot be read back.
func checkEncoded(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to check encoded year: %w", err)
	}
	if err := validateDocument(doc, false); err != nil {
		return fmt.Errorf("%w: refusing to write year: %w", domain.ErrInvariantViolation, err)
	}
	return nil
}

func toDayDocument(day domain.Day) (dayDocument, error) {
	d := dayDocument{
		Priorities: make([]json.RawMessage, 0, len(day.Priorities)),
		Log:        make([]focusDocument, 0, len(day.Log)),
		Notes:      make([]string, 0, len(day.Notes)),
	}

	for _, p := range day.Priorities {
		raw, err := json.Marshal(priorityDocument{Name: p.Name, Done: p.Done})
		if err != nil {
			return dayDocument{}, err
		}
		d.Priorities = append(d.Priorities, raw)
	}

	for _, f := range day.Log {
		fd := focusDocument{
			Name:   f.Name,
			Start:  f.Start.String(),
			Breaks: make([]breakDocument, 0, len(f.Breaks)),
		}
		for _, b := range f.Breaks {
			fd.Breaks = append(fd.Breaks, breakDocument{Start: b.Start.String(), End: b.End.String()})
		}
		d.Log = append(d.Log, fd)
	}

	d.Notes = append(d.Notes, day.Notes...)

	if day.EndTime != nil {
		end := day.EndTime.String()
		d.EndTime = &end
	}
	return d, nil
}

// DecodeYear parses a year document written by any schema version.
// Failures are reported as *domain.CorruptDataError without a path.
func DecodeYear(data []byte) (domain.Year, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, corrupt("invalid JSON", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, corrupt("document is not an object", nil)
	}

	version, err := documentVersion(obj)
	if err != nil {
		return nil, err
	}
	legacy := isLegacyPriorityFormat(version)

	if err := validateDocument(obj, legacy); err != nil {
		return nil, corrupt("schema validation failed", err)
	}

	var doc yearDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt("unexpected document shape", err)
	}

	year := make(domain.Year, len(doc.Days))
	for key, dd := range doc.Days {
		date, err := domain.ParseDate(key)
		if err != nil {
			return nil, corrupt("bad date key", err)
		}
		day, err := fromDayDocument(dd, legacy)
		if err != nil {
			return nil, corrupt("bad day "+key, err)
		}
		year[date] = day
	}
	return year, nil
}

// documentVersion returns the document's schema version, or nil when the
// document predates versioning.
func documentVersion(obj map[string]any) (*semver.Version, error) {
	raw, ok := obj["version"]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, corrupt(fmt.Sprintf("version must be a string, got %v", raw), nil)
	}
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, corrupt(fmt.Sprintf("malformed version %q", s), err)
	}
	return v, nil
}

func fromDayDocument(dd dayDocument, legacy bool) (domain.Day, error) {
	var day domain.Day

	for i, raw := range dd.Priorities {
		p, err := decodePriority(raw, legacy)
		if err != nil {
			return domain.Day{}, fmt.Errorf("priority %d: %w", i, err)
		}
		day.Priorities = append(day.Priorities, p)
	}

	for _, fd := range dd.Log {
		start, err := domain.ParseTimeOfDay(fd.Start)
		if err != nil {
			return domain.Day{}, fmt.Errorf("focus %q: %w", fd.Name, err)
		}
		focus := domain.Focus{Name: fd.Name, Start: start}
		for _, bd := range fd.Breaks {
			b, err := decodeBreak(bd)
			if err != nil {
				return domain.Day{}, fmt.Errorf("focus %q: %w", fd.Name, err)
			}
			focus.Breaks = append(focus.Breaks, b)
		}
		day.Log = append(day.Log, focus)
	}

	if len(dd.Notes) > 0 {
		day.Notes = dd.Notes
	}

	if dd.EndTime != nil {
		end, err := domain.ParseTimeOfDay(*dd.EndTime)
		if err != nil {
			return domain.Day{}, fmt.Errorf("end time: %w", err)
		}
		day.EndTime = &end
	}
	return day, nil
}

func decodePriority(raw json.RawMessage, legacy bool) (domain.Priority, error) {
	if legacy {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return domain.Priority{}, err
		}
		return domain.NewPriority(name), nil
	}

	var pd priorityDocument
	if err := json.Unmarshal(raw, &pd); err != nil {
		return domain.Priority{}, err
	}
	return domain.Priority{Name: pd.Name, Done: pd.Done}, nil
}

func decodeBreak(bd breakDocument) (domain.Break, error) {
	start, err := domain.ParseTimeOfDay(bd.Start)
	if err != nil {
		return domain.Break{}, fmt.Errorf("break start: %w", err)
	}
	b := domain.Break{Start: start, End: domain.OpenEnd}
	if bd.End != "" {
		if b.End, err = domain.ParseTimeOfDay(bd.End); err != nil {
			return domain.Break{}, fmt.Errorf("break end: %w", err)
		}
	}
	return b, nil
}

func corrupt(reason string, err error) *domain.CorruptDataError {
	return &domain.CorruptDataError{Reason: reason, Err: err}
}
