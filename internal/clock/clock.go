package clock

import "time"

// Clock supplies the current time. Document rendering takes its timestamp
// from here so tests can pin it and composition stays reproducible.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a clock frozen at the given instant.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
