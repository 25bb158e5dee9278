package api

import "time"

// Snapshot is one successful usage observation.
type Snapshot struct {
	// Utilization is the percentage of the five-hour quota window
	// consumed, clamped to 0-100.
	Utilization int
	// ResetsAt is when the window resets. Zero when the API omitted it.
	ResetsAt time.Time
	// ObservedAt is when the fetch succeeded.
	ObservedAt time.Time
}

// usageResponse mirrors the narrow slice of the endpoint's JSON body that
// the status line consumes.
type usageResponse struct {
	FiveHour *struct {
		Utilization *int   `json:"utilization"`
		ResetsAt    string `json:"resets_at"`
	} `json:"five_hour"`
}
