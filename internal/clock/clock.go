// Package clock abstracts reading the current time so token issuance and
// expiry checks can run against a controlled clock in tests.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// Real returns a Clock backed by time.Now.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}
