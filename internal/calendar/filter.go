package calendar

import (
	"time"

	"TreasuryCalendar/internal/domain"
)

// Recent keeps securities whose auction date is no earlier than daysBack
// days before now, compared at calendar-date precision so the boundary day
// is always included. Input order is preserved.
func Recent(securities []domain.Security, daysBack int, now time.Time) []domain.Security {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysBack)

	kept := make([]domain.Security, 0, len(securities))
	for _, sec := range securities {
		if sec.AuctionDate.Before(cutoff) {
			continue
		}
		kept = append(kept, sec)
	}
	return kept
}
