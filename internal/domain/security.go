package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. The upstream
// feed serializes dates as ISO strings, usually with a redundant midnight
// suffix ("2024-01-09T00:00:00"); the suffix is stripped on decode so the
// value always behaves as a pure calendar date.
type Date struct {
	time.Time
}

// ParseDate decodes an upstream date string into a Date.
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSuffix(value, "T00:00:00")
	if t, err := time.Parse(dateLayout, trimmed); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{t.Truncate(24 * time.Hour)}, nil
}

// UnmarshalJSON accepts an ISO date string or null. An empty or null value
// leaves the Date zero, which callers treat as absent.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == nil || *raw == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(*raw)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// String renders the date in ISO form, or empty when absent.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Amount is an offering amount that arrives as either a JSON number or a
// string. The original textual form is preserved so large dollar figures
// round-trip without float formatting artifacts.
type Amount struct {
	raw string
}

// UnmarshalJSON accepts a number, a string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		a.raw = n.String()
		return nil
	}
	if string(data) == "null" {
		a.raw = ""
		return nil
	}
	return fmt.Errorf("offering amount must be a number or string, got %s", data)
}

// IsZero reports whether the amount was absent from the feed.
func (a Amount) IsZero() bool { return a.raw == "" }

func (a Amount) String() string { return a.raw }

// Security is one announced Treasury security as returned by the
// TreasuryDirect API. The first five fields are required; the rest are
// optional and may be zero.
type Security struct {
	CUSIP                     string `json:"cusip"`
	SecurityType              string `json:"securityType"`
	SecurityTerm              string `json:"securityTerm"`
	AnnouncementDate          Date   `json:"announcementDate"`
	AuctionDate               Date   `json:"auctionDate"`
	IssueDate                 Date   `json:"issueDate"`
	MaturityDate              Date   `json:"maturityDate"`
	OfferingAmount            Amount `json:"offeringAmount"`
	ClosingTimeCompetitive    string `json:"closingTimeCompetitive"`
	ClosingTimeNoncompetitive string `json:"closingTimeNoncompetitive"`
}

// Validate checks the required-field contract once at the ingest boundary
// so downstream mapping never has to re-check.
func (s Security) Validate() error {
	if s.CUSIP == "" {
		return fmt.Errorf("security is missing cusip")
	}
	if s.SecurityType == "" {
		return fmt.Errorf("security %s is missing securityType", s.CUSIP)
	}
	if s.SecurityTerm == "" {
		return fmt.Errorf("security %s is missing securityTerm", s.CUSIP)
	}
	if s.AnnouncementDate.IsZero() {
		return fmt.Errorf("security %s is missing announcementDate", s.CUSIP)
	}
	if s.AuctionDate.IsZero() {
		return fmt.Errorf("security %s is missing auctionDate", s.CUSIP)
	}
	return nil
}

// EventKind selects which calendar entry a security maps to.
type EventKind string

const (
	KindAnnouncement EventKind = "announcement"
	KindAuction      EventKind = "auction"
)

// ParseEventKind resolves a user-supplied kind name, case-insensitively.
func ParseEventKind(value string) (EventKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(KindAnnouncement):
		return KindAnnouncement, nil
	case string(KindAuction):
		return KindAuction, nil
	}
	return "", fmt.Errorf("unknown event type %q (want announcement or auction)", value)
}

// Label is the capitalized form used in calendar categories.
func (k EventKind) Label() string {
	switch k {
	case KindAnnouncement:
		return "Announcement"
	case KindAuction:
		return "Auction"
	}
	return string(k)
}
