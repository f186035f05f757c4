package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"TreasuryCalendar/internal/domain"
)

// uidDomain anchors event UIDs so the same CUSIP and kind always produce
// the same identifier, letting calendar consumers overwrite instead of
// duplicate on re-import.
const uidDomain = "treasurydirect.gov"

// UID returns the deterministic identifier for a security's event of the
// given kind.
func UID(cusip string, kind domain.EventKind) string {
	return fmt.Sprintf("%s-%s@%s", cusip, kind, uidDomain)
}

// Announcement maps a security to the all-day event marking its auction
// announcement. stamp becomes the event's DTSTAMP.
func Announcement(sec domain.Security, stamp time.Time) *ical.Event {
	ev := newAllDayEvent(UID(sec.CUSIP, domain.KindAnnouncement), sec.AnnouncementDate, stamp)

	summary := fmt.Sprintf("%s %s Auction Announced", sec.SecurityTerm, sec.SecurityType)
	ev.Props.SetText(ical.PropSummary, summary)

	lines := []string{
		"Auction Date: " + sec.AuctionDate.String(),
		"CUSIP: " + sec.CUSIP,
		"Offering Amount: $" + amountOrTBD(sec.OfferingAmount),
	}
	if !sec.MaturityDate.IsZero() {
		lines = append(lines, "Maturity Date: "+sec.MaturityDate.String())
	}
	ev.Props.SetText(ical.PropDescription, strings.Join(lines, "\n"))

	setCategories(ev, domain.KindAnnouncement, sec.SecurityType)
	return ev
}

// Auction maps a security to the all-day event for the auction itself.
func Auction(sec domain.Security, stamp time.Time) *ical.Event {
	ev := newAllDayEvent(UID(sec.CUSIP, domain.KindAuction), sec.AuctionDate, stamp)

	summary := fmt.Sprintf("%s %s Auction", sec.SecurityTerm, sec.SecurityType)
	ev.Props.SetText(ical.PropSummary, summary)

	lines := []string{
		"CUSIP: " + sec.CUSIP,
		"Security Term: " + sec.SecurityTerm,
		"Offering Amount: $" + amountOrTBD(sec.OfferingAmount),
	}
	if sec.ClosingTimeCompetitive != "" {
		lines = append(lines, "Competitive Closing: "+sec.ClosingTimeCompetitive)
	}
	if sec.ClosingTimeNoncompetitive != "" {
		lines = append(lines, "Non-Competitive Closing: "+sec.ClosingTimeNoncompetitive)
	}
	if !sec.IssueDate.IsZero() {
		lines = append(lines, "Issue Date: "+sec.IssueDate.String())
	}
	if !sec.MaturityDate.IsZero() {
		lines = append(lines, "Maturity Date: "+sec.MaturityDate.String())
	}
	ev.Props.SetText(ical.PropDescription, strings.Join(lines, "\n"))

	setCategories(ev, domain.KindAuction, sec.SecurityType)
	return ev
}

func newAllDayEvent(uid string, start domain.Date, stamp time.Time) *ical.Event {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, uid)

	stampProp := ical.NewProp(ical.PropDateTimeStamp)
	stampProp.SetDateTime(stamp.UTC())
	ev.Props.Set(stampProp)

	// DTSTART as VALUE=DATE renders an all-day entry, not a timed one.
	startProp := ical.NewProp(ical.PropDateTimeStart)
	startProp.SetValueType(ical.ValueDate)
	startProp.Value = start.Format("20060102")
	ev.Props.Set(startProp)

	return ev
}

func setCategories(ev *ical.Event, kind domain.EventKind, securityType string) {
	prop := ical.NewProp(ical.PropCategories)
	prop.SetTextList([]string{"Treasury", kind.Label(), securityType})
	ev.Props.Set(prop)
}

func amountOrTBD(a domain.Amount) string {
	if a.IsZero() {
		return "TBD"
	}
	return a.String()
}
