package client

import "time"

// SystemClock reads the wall clock in Unix seconds.
type SystemClock struct{}

// Now returns the current Unix time.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

var _ Clock = SystemClock{}
