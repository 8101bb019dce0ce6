package agent

import "time"

// Snapshot captures the screen at one point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Frames    int       `json:"frames"`
	Lines     []string  `json:"lines,omitempty"`
}
