package calendar

import (
	"time"

	"github.com/emersion/go-ical"

	"TreasuryCalendar/internal/domain"
)

// Fixed document metadata, attached once per calendar.
const (
	ProductID = "-//Treasury Auction Calendar//elmotec.github.io//"
	Version   = "2.0"
)

// Build assembles the calendar document. Securities are visited in input
// order; for each one the requested kinds are appended announcement-first
// so repeated runs over the same data produce the same event ordering.
// Duplicate CUSIPs in the feed pass through untouched and yield events
// with colliding UIDs; cleaning the feed is the upstream's job.
func Build(securities []domain.Security, kinds []domain.EventKind, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropVersion, Version)

	wantAnnouncement := hasKind(kinds, domain.KindAnnouncement)
	wantAuction := hasKind(kinds, domain.KindAuction)

	for _, sec := range securities {
		if wantAnnouncement {
			cal.Children = append(cal.Children, Announcement(sec, stamp).Component)
		}
		if wantAuction {
			cal.Children = append(cal.Children, Auction(sec, stamp).Component)
		}
	}

	return cal
}

func hasKind(kinds []domain.EventKind, want domain.EventKind) bool {
	for _, k := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
