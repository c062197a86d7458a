package command

import "time"

// Activity states the derived counters distinguish.
const (
	activityStateTerminated = "Terminated"
	activityStateNew        = "New"
)

// ActivityStatus is the daemon's reply to `activity status`: per-state
// activity counts over the last hour and all time, plus the timestamp
// of the most recent activity if there was any.
type ActivityStatus struct {
	Last1h         map[string]uint64 `json:"last1h"`
	Total          map[string]uint64 `json:"total"`
	LastActivityTs *time.Time        `json:"lastActivityTs"`
}

// Last1hProcessed returns the number of activities terminated within
// the last hour.
func (s *ActivityStatus) Last1hProcessed() uint64 {
	return s.Last1h[activityStateTerminated]
}

// InProgress returns the number of running activities: every last-hour
// bucket except Terminated and New, summed.
func (s *ActivityStatus) InProgress() uint64 {
	var inProgress uint64
	for state, count := range s.Last1h {
		if state != activityStateTerminated && state != activityStateNew {
			inProgress += count
		}
	}
	return inProgress
}

// TotalProcessed returns the all-time count of terminated activities.
func (s *ActivityStatus) TotalProcessed() uint64 {
	return s.Total[activityStateTerminated]
}
