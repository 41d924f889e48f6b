package experiment

import "time"

// TrialResult is one recorded (post warm-up) trial.
type TrialResult struct {
	ExperimentIndex int
	Algorithm       string
	DataType        string
	Size            int
	Structure       string
	Trial           int // 1-based within its configuration
	Elapsed         time.Duration
}

// Millis returns the elapsed time in fractional milliseconds.
func (r TrialResult) Millis() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}
