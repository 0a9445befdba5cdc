// Package rhythm partitions a sequence of timed events into a chain of flat
// groups and derives the interval features consumed by difficulty weighting.
package rhythm

import (
	"math"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
)

// Group is one maximal run of near-equally spaced events. It is linked to the
// group before it and never mutated once built.
type Group struct {
	// Members in chronological order, never empty.
	Members []*model.TimedEvent

	// Previous is the group immediately before this one in the chain, nil
	// for the head.
	Previous *Group

	// EventIntervalRatio is this group's first-pair spacing over the
	// previous group's. Stays 1 unless both spacings are defined.
	EventIntervalRatio float64

	// StartTimeInterval is the spacing between this group's start time and
	// the previous group's. +Inf marks the chain head.
	StartTimeInterval float64

	eventInterval    float64
	hasEventInterval bool
}

func newGroup(members []*model.TimedEvent, previous *Group, index int) *Group {
	g := Group{
		Members:            members,
		Previous:           previous,
		EventIntervalRatio: 1,
		StartTimeInterval:  math.Inf(1),
	}

	for _, e := range members {
		e.Rhythm.GroupIndex = index
	}

	if len(members) >= 2 {
		g.eventInterval = members[1].StartTime - members[0].StartTime
		g.hasEventInterval = true
	}

	if previous == nil {
		return &g
	}
	if g.hasEventInterval && previous.hasEventInterval {
		g.EventIntervalRatio = g.eventInterval / previous.eventInterval
	}
	g.StartTimeInterval = g.StartTime() - previous.StartTime()
	return &g
}

// StartTime is the start time of the first member.
func (g *Group) StartTime() float64 {
	return g.Members[0].StartTime
}

// Duration is the time spanned between the first and last member.
func (g *Group) Duration() float64 {
	return g.Members[len(g.Members)-1].StartTime - g.Members[0].StartTime
}

// Ratio is the duration ratio carried by the first member.
func (g *Group) Ratio() float64 {
	return g.Members[0].Rhythm.Ratio
}

// EventInterval is the spacing between the first two members. The second
// value is false for single-member groups.
func (g *Group) EventInterval() (float64, bool) {
	return g.eventInterval, g.hasEventInterval
}

// Interval lets a chain of groups be segmented again by start-time spacing.
func (g *Group) Interval() float64 {
	return g.StartTimeInterval
}

// IsRepetitionOf reports whether other carries the same rhythm as g. Only the
// first two members decide: a group has near-zero internal spacing variation
// by construction, so comparing further members adds nothing.
func (g *Group) IsRepetitionOf(other *Group) bool {
	if other == nil || len(g.Members) != len(other.Members) {
		return false
	}
	deciding := 0
	if len(g.Members) >= 2 {
		deciding = 1
	}
	diff := g.Members[deciding].DeltaTime - other.Members[deciding].DeltaTime
	return math.Abs(diff) < constants.RepetitionTolerance
}
