package ports

import "time"

// Clock provides the current time for identity stamps
type Clock interface {
	Now() time.Time
}
