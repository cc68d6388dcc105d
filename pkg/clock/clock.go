// Package clock abstracts access to the current time so that callers can
// inject a fixed instant in tests.
package clock

import "time"

// Clock provides the current time. Use Real in production and Fixed in
// tests. "Now" is re-read on every call; it is never cached.
type Clock interface {
	Now() time.Time
}

// Real reads the actual system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return f.Instant }
