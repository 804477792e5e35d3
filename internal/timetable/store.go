// Package timetable holds the base prayer time table loaded from CSV.
//
// The active table is immutable and published through an atomic pointer, so
// lookups never observe a partially loaded table. A failed reload leaves the
// previous table in place.
package timetable

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// ErrParseFailure is returned when the source cannot produce a usable table.
var ErrParseFailure = errors.New("time table parse failure")

type table struct {
	days     map[string]entity.PrayerDay
	first    time.Time
	last     time.Time
	skipped  int
	loadedAt time.Time
}

// Stats describes the active table.
type Stats struct {
	Rows     int
	Skipped  int
	First    time.Time
	Last     time.Time
	LoadedAt time.Time
}

type Store struct {
	source Source
	mu     sync.Mutex
	active atomic.Pointer[table]
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load parses the source and swaps it in as the active table.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rc, err := s.source.Open(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailure, err)
	}
	defer rc.Close()

	t, err := parse(rc)
	if err != nil {
		return err
	}
	t.loadedAt = time.Now()

	s.active.Store(t)

	log.Info().
		Int("rows", len(t.days)).
		Int("skipped", t.skipped).
		Str("first", t.first.Format(domain.DateLayout)).
		Str("last", t.last.Format(domain.DateLayout)).
		Msg("time table loaded")

	return nil
}

// Reload re-reads the source. On failure the previous table stays active.
func (s *Store) Reload(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		log.Error().Err(err).Msg("time table reload failed, keeping previous table")
		return err
	}
	return nil
}

// Lookup returns the row for the calendar date of d, read in d's own location.
func (s *Store) Lookup(d time.Time) (entity.PrayerDay, bool) {
	t := s.active.Load()
	if t == nil {
		return entity.PrayerDay{}, false
	}
	day, ok := t.days[d.Format(domain.DateLayout)]
	return day, ok
}

// Covers reports whether the calendar date of d lies within the loaded range.
func (s Stats) Covers(d time.Time) bool {
	if s.Rows == 0 {
		return false
	}
	day := d.Format(domain.DateLayout)
	return day >= s.First.Format(domain.DateLayout) && day <= s.Last.Format(domain.DateLayout)
}

func (s *Store) Stats() Stats {
	t := s.active.Load()
	if t == nil {
		return Stats{}
	}
	return Stats{
		Rows:     len(t.days),
		Skipped:  t.skipped,
		First:    t.first,
		Last:     t.last,
		LoadedAt: t.loadedAt,
	}
}

func parse(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", ErrParseFailure, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}

	dateCol, ok := columns["date"]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrParseFailure, "date")
	}
	prayerCols := make([]int, len(domain.PrayerKeys))
	for i, key := range domain.PrayerKeys {
		col, ok := columns[string(key)]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrParseFailure, key)
		}
		prayerCols[i] = col
	}

	t := &table{days: make(map[string]entity.PrayerDay)}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			t.skipped++
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed time table row")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read row %d: %w", ErrParseFailure, line, err)
		}

		day, err := parseRow(record, dateCol, prayerCols)
		if err != nil {
			t.skipped++
			log.Warn().Err(err).Int("line", line).Msg("skipping malformed time table row")
			continue
		}

		t.days[day.Date.Format(domain.DateLayout)] = day
		if t.first.IsZero() || day.Date.Before(t.first) {
			t.first = day.Date
		}
		if day.Date.After(t.last) {
			t.last = day.Date
		}
	}

	if len(t.days) == 0 {
		return nil, fmt.Errorf("%w: no valid rows", ErrParseFailure)
	}

	return t, nil
}

func parseRow(record []string, dateCol int, prayerCols []int) (entity.PrayerDay, error) {
	field := func(i int) (string, error) {
		if i >= len(record) {
			return "", fmt.Errorf("row has %d fields, need column %d", len(record), i+1)
		}
		return strings.TrimSpace(record[i]), nil
	}

	raw, err := field(dateCol)
	if err != nil {
		return entity.PrayerDay{}, err
	}
	date, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return entity.PrayerDay{}, fmt.Errorf("invalid date %q", raw)
	}

	day := entity.PrayerDay{
		Date:  date,
		Times: make(map[domain.PrayerKey]entity.ClockTime, len(domain.PrayerKeys)),
	}

	prev := entity.ClockTime(-1)
	for i, key := range domain.PrayerKeys {
		raw, err := field(prayerCols[i])
		if err != nil {
			return entity.PrayerDay{}, err
		}
		ct, err := entity.ParseClockTime(raw)
		if err != nil {
			return entity.PrayerDay{}, fmt.Errorf("%s: %w", key, err)
		}
		if ct <= prev {
			return entity.PrayerDay{}, fmt.Errorf("%s at %s is not after the previous prayer", key, ct)
		}
		day.Times[key] = ct
		prev = ct
	}

	return day, nil
}
