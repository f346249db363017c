package entity

import "time"

// TimelineEvent is a single status change of a shipment.
type TimelineEvent struct {
	Status      ShipmentStatus `json:"status"`
	Timestamp   time.Time      `json:"timestamp"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
}

// Timeline is the ordered, append-only log of status events.
type Timeline []TimelineEvent

// Append returns a new timeline with e added at the end. The receiver is
// never modified and the result never shares its backing array.
func (t Timeline) Append(e TimelineEvent) Timeline {
	out := make(Timeline, len(t), len(t)+1)
	copy(out, t)

	return append(out, e)
}

// Last returns the most recent event.
func (t Timeline) Last() (TimelineEvent, bool) {
	if len(t) == 0 {
		return TimelineEvent{}, false
	}

	return t[len(t)-1], true
}

// Clone returns an independent copy of t.
func (t Timeline) Clone() Timeline {
	if t == nil {
		return nil
	}
	out := make(Timeline, len(t))
	copy(out, t)

	return out
}
