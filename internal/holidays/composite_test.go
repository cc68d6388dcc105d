package holidays

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

// stubProvider lets tests script the primary provider's behavior.
type stubProvider struct {
	events []Event
	err    error
	calls  int
}

func (s *stubProvider) YearEvents(year int) ([]Event, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.events, nil
}

func (s *stubProvider) Holiday(jy, jm, jd int) (string, bool, error) {
	events, err := s.YearEvents(jy)
	if err != nil {
		return "", false, err
	}
	title, ok := findHoliday(events, jy, jm, jd)
	return title, ok, nil
}

func TestComposite_PrimarySuccessWritesThrough(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	store := NewFileStore(t.TempDir(), logger)

	primary := &stubProvider{
		events: []Event{{Year: 1404, Month: 1, Day: 1, Title: "جشن نوروز"}},
	}
	composite := NewComposite(primary, store, logger)

	events, err := composite.YearEvents(1404)
	if err != nil {
		t.Fatalf("YearEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("YearEvents() returned %d events, want 1", len(events))
	}

	// The successful fetch must now be readable from the file store alone.
	cached, err := store.YearEvents(1404)
	if err != nil {
		t.Fatalf("file store YearEvents() error = %v", err)
	}
	if len(cached) != 1 || cached[0].Title != "جشن نوروز" {
		t.Errorf("write-through cache = %+v", cached)
	}
}

func TestComposite_FallsBackToFileStore(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	store := NewFileStore(t.TempDir(), logger)

	seed := []Event{{Year: 1404, Month: 1, Day: 13, Title: "روز طبیعت"}}
	if err := store.Save(1404, seed); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	primary := &stubProvider{err: errors.New("network down")}
	composite := NewComposite(primary, store, logger)

	events, err := composite.YearEvents(1404)
	if err != nil {
		t.Fatalf("YearEvents() error = %v", err)
	}
	if len(events) != 1 || events[0].Day != 13 {
		t.Errorf("YearEvents() = %+v, want the seeded cache entry", events)
	}

	title, ok, err := composite.Holiday(1404, 1, 13)
	if err != nil {
		t.Fatalf("Holiday() error = %v", err)
	}
	if !ok || title != "روز طبیعت" {
		t.Errorf("Holiday() = (%q, %v), want (روز طبیعت, true)", title, ok)
	}
}

func TestComposite_BothFail(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	store := NewFileStore(t.TempDir(), logger)

	primary := &stubProvider{err: errors.New("network down")}
	composite := NewComposite(primary, store, logger)

	if _, err := composite.YearEvents(1404); err == nil {
		t.Error("YearEvents() expected error when primary and cache both fail")
	}
}
