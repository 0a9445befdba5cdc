package model

// RhythmData carries the pre-computed duration ratio for an event plus the
// slot the chain builder fills in with the index of the group the event
// landed in.
type RhythmData struct {
	// Ratio of this event's delta time to the previous event's. 1 when
	// there is no previous delta to compare against.
	Ratio float64

	// Index of the owning group within the built chain, -1 until assigned.
	GroupIndex int
}

// TimedEvent is a single onset on the timeline. StartTime and DeltaTime are
// in milliseconds. Events are produced once by an input stage (beatmap, midi,
// raw onsets) and only Rhythm.GroupIndex is written afterwards.
type TimedEvent struct {
	StartTime float64
	DeltaTime float64
	Rhythm    RhythmData
}

// Interval is the spacing used when segmenting raw events into flat runs.
func (e *TimedEvent) Interval() float64 {
	return e.DeltaTime
}

// NewTimedEvents builds the event sequence for a sorted list of onset times.
func NewTimedEvents(onsets []float64) []*TimedEvent {
	events := make([]*TimedEvent, 0, len(onsets))
	for i, onset := range onsets {
		e := TimedEvent{
			StartTime: onset,
			Rhythm:    RhythmData{Ratio: 1, GroupIndex: -1},
		}
		if i > 0 {
			e.DeltaTime = onset - onsets[i-1]
		}
		if i > 1 {
			prevDelta := onsets[i-1] - onsets[i-2]
			if prevDelta > 0 {
				e.Rhythm.Ratio = e.DeltaTime / prevDelta
			}
		}
		events = append(events, &e)
	}
	return events
}
