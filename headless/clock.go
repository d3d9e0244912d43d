package headless

import "time"

// FastClock reads the real time but never sleeps.
type FastClock struct{}

func (FastClock) Now() time.Time {
	return time.Now()
}

func (FastClock) Sleep(time.Duration) {}
