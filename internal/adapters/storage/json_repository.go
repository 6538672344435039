package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/ports"
)

const (
	yearFileExt   = ".json"
	yearCacheSize = 4
)

// JSONRepository implements ports.DayRepository with one JSON file per
// calendar year inside the context directory.
type JSONRepository struct {
	cache   *lru.Cache[int, cachedYear]
	context string
	dir     string
	version string
}

// Verify interface compliance at compile time
var _ ports.DayRepository = (*JSONRepository)(nil)

// cachedYear remembers a decoded file by the hash of the bytes it was
// decoded from. The file is still read on every access, only decoding and
// schema validation are skipped, so writes that keep the size and land
// within the filesystem's mtime granularity are never served stale.
type cachedYear struct {
	days domain.Year
	sum  uint64
}

// NewJSONRepository opens the context partition under root, creating its
// directory if needed. version is stamped into every file written.
func NewJSONRepository(root, contextName, version string) (*JSONRepository, error) {
	if err := ValidateContextName(contextName); err != nil {
		return nil, err
	}
	if _, err := semver.StrictNewVersion(version); err != nil {
		return nil, fmt.Errorf("invalid schema version %q: %w", version, err)
	}

	dir := filepath.Join(root, contextName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create context directory: %w", err)
	}

	cache, err := lru.New[int, cachedYear](yearCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create year cache: %w", err)
	}

	logging.Logger.Debug("Opened day repository", "dir", dir, "version", version)
	return &JSONRepository{
		cache:   cache,
		context: contextName,
		dir:     dir,
		version: version,
	}, nil
}

// ValidateContextName rejects names that cannot be a single directory
func ValidateContextName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", domain.ErrInvalidContext, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", domain.ErrInvalidContext, name)
	}
	return nil
}

func (r *JSONRepository) Context() string {
	return r.context
}

// Dir returns the context directory
func (r *JSONRepository) Dir() string {
	return r.dir
}

func (r *JSONRepository) Close() error {
	r.cache.Purge()
	return nil
}

func (r *JSONRepository) yearPath(year int) string {
	return filepath.Join(r.dir, strconv.Itoa(year)+yearFileExt)
}

// Year returns the days stored for a calendar year. A missing file is an
// empty year.
func (r *JSONRepository) Year(ctx context.Context, year int) (domain.Year, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	days, err := r.readYear(year)
	if err != nil {
		return nil, err
	}
	return days.Clone(), nil
}

func (r *JSONRepository) readYear(year int) (domain.Year, error) {
	path := r.yearPath(year)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r.cache.Remove(year)
		return domain.Year{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read year file: %w", err)
	}

	sum := xxhash.Sum64(data)
	if cached, ok := r.cache.Get(year); ok && cached.sum == sum {
		return cached.days, nil
	}

	days, err := DecodeYear(data)
	if err != nil {
		var cde *domain.CorruptDataError
		if errors.As(err, &cde) {
			cde.Path = path
		}
		logging.Logger.Error("Failed to decode year file", "path", path, "error", err)
		return nil, err
	}

	r.cache.Add(year, cachedYear{days: days, sum: sum})
	logging.Logger.Debug("Loaded year", "path", path, "days", len(days))
	return days, nil
}

// Day returns the stored day, or an empty day when nothing is planned yet
func (r *JSONRepository) Day(ctx context.Context, date domain.Date) (domain.Day, error) {
	if err := ctx.Err(); err != nil {
		return domain.Day{}, err
	}
	days, err := r.readYear(date.Year)
	if err != nil {
		return domain.Day{}, err
	}
	return days[date].Clone(), nil
}

// SetYear replaces the year file whole. Every date must fall in year.
func (r *JSONRepository) SetYear(ctx context.Context, year int, days domain.Year) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkPartition(year, days); err != nil {
		return err
	}
	return withContextLock(r.dir, func() error {
		return r.writeYear(year, days)
	})
}

// SetDay stores one day by rewriting its year
func (r *JSONRepository) SetDay(ctx context.Context, date domain.Date, day domain.Day) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return withContextLock(r.dir, func() error {
		days, err := r.readYear(date.Year)
		if err != nil {
			return err
		}
		updated := days.Clone()
		updated[date] = day.Clone()
		return r.writeYear(date.Year, updated)
	})
}

// checkPartition reports the earliest date of days outside year
func checkPartition(year int, days domain.Year) error {
	var stray *domain.Date
	for date := range days {
		date := date
		if date.Year != year && (stray == nil || date.Before(*stray)) {
			stray = &date
		}
	}
	if stray != nil {
		return fmt.Errorf("%w: %s does not belong to year %d", domain.ErrInvariantViolation, *stray, year)
	}
	return nil
}

func (r *JSONRepository) writeYear(year int, days domain.Year) error {
	data, err := EncodeYear(days, r.version)
	if err != nil {
		return err
	}

	path := r.yearPath(year)
	if err := writeFileAtomic(path, data); err != nil {
		logging.Logger.Error("Failed to write year file", "path", path, "error", err)
		return err
	}

	r.cache.Remove(year)
	logging.Logger.Debug("Saved year", "path", path, "days", len(days))
	return nil
}

// writeFileAtomic writes to a temporary file in the same directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace year file: %w", err)
	}
	return nil
}

// Years lists the calendar years stored in the context, oldest first
func (r *JSONRepository) Years(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list context directory: %w", err)
	}

	var years []int
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, yearFileExt) {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSuffix(name, yearFileExt))
		if err != nil || year <= 0 {
			continue
		}
		years = append(years, year)
	}
	slices.Sort(years)
	return years, nil
}

// LastDate returns the newest stored date that is not after today
func (r *JSONRepository) LastDate(ctx context.Context, today domain.Date) (domain.Date, error) {
	years, err := r.Years(ctx)
	if err != nil {
		return domain.Date{}, err
	}

	for i := len(years) - 1; i >= 0; i-- {
		if years[i] > today.Year {
			continue
		}
		if err := ctx.Err(); err != nil {
			return domain.Date{}, err
		}
		days, err := r.readYear(years[i])
		if err != nil {
			return domain.Date{}, err
		}

		var last domain.Date
		for date := range days {
			if !date.After(today) && (last.IsZero() || date.After(last)) {
				last = date
			}
		}
		if !last.IsZero() {
			return last, nil
		}
	}
	return domain.Date{}, domain.ErrNoData
}
