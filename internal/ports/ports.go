package ports

import (
	"context"
	"time"

	"TreasuryCalendar/internal/domain"
)

// SecuritySource pulls announced securities from the upstream API.
type SecuritySource interface {
	Fetch(ctx context.Context) ([]domain.Security, error)
}

// Publisher records the generated calendar file in version control:
// stage, skip when nothing changed, commit, push.
type Publisher interface {
	Publish(ctx context.Context, path string) error
}

// Clock supplies the current time so runs are reproducible in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }
