package rhythm

import (
	"fmt"

	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/interval"
	"github.com/jsphweid/rhythmdex/model"
)

// BuildChain carves the full event sequence into linked groups. Every event
// lands in exactly one group, in order, and gets its group index written back.
func BuildChain(events []*model.TimedEvent) ([]*Group, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("cannot build a chain from an empty event sequence")
	}

	var chain []*Group
	var previous *Group
	cursor := 0
	for cursor < len(events) {
		members, next, err := interval.ExtractFlatRun(events, cursor, constants.GroupingMarginOfError)
		if err != nil {
			return nil, err
		}
		g := newGroup(members, previous, len(chain))
		chain = append(chain, g)
		previous = g
		cursor = next
	}
	return chain, nil
}
