package calendar

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"TreasuryCalendar/internal/domain"
)

func decodeFile(t *testing.T, path string) []ical.Event {
	t.Helper()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	decoder := ical.NewDecoder(strings.NewReader(string(raw)))
	var events []ical.Event
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("decode calendar: %v", err)
		}
		events = append(events, cal.Events()...)
	}
	return events
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	sec := securityAuctionedOn("EEE555", time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC))
	cal := Build([]domain.Security{sec}, []domain.EventKind{domain.KindAuction}, stamp)

	path := filepath.Join(t.TempDir(), "output", "treasury-auctions.ics")
	if err := Write(cal, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// A second write replaces the file without error.
	if err := Write(cal, path); err != nil {
		t.Fatalf("second Write returned error: %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	first := securityAuctionedOn("FFF666", time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC))
	second := securityAuctionedOn("GGG777", time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC))

	cal := Build(
		[]domain.Security{first, second},
		[]domain.EventKind{domain.KindAnnouncement, domain.KindAuction},
		stamp,
	)

	path := filepath.Join(t.TempDir(), "cal.ics")
	if err := Write(cal, path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	events := decodeFile(t, path)
	if len(events) != 4 {
		t.Fatalf("expected 4 events after round trip, got %d", len(events))
	}

	wantStarts := map[string]time.Time{
		"FFF666-announcement@treasurydirect.gov": time.Date(2024, time.January, 4, 0, 0, 0, 0, time.UTC),
		"FFF666-auction@treasurydirect.gov":      time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		"GGG777-announcement@treasurydirect.gov": time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC),
		"GGG777-auction@treasurydirect.gov":      time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC),
	}

	seen := map[string]bool{}
	for _, ev := range events {
		uid, err := ev.Props.Get(ical.PropUID).Text()
		if err != nil {
			t.Fatalf("read uid: %v", err)
		}
		want, ok := wantStarts[uid]
		if !ok {
			t.Fatalf("unexpected uid %s", uid)
		}
		start, err := ev.Props.Get(ical.PropDateTimeStart).DateTime(time.UTC)
		if err != nil {
			t.Fatalf("read DTSTART of %s: %v", uid, err)
		}
		if !start.Equal(want) {
			t.Fatalf("%s: got start %v, want %v", uid, start, want)
		}
		seen[uid] = true
	}
	if len(seen) != len(wantStarts) {
		t.Fatalf("missing uids: saw %d of %d", len(seen), len(wantStarts))
	}
}
