package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns local time with the monotonic reading intact; durations between
// two readings are measured on the monotonic clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}
