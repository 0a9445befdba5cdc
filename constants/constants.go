package constants

import "os"

func GetServeAddr() string {
	port := os.Getenv("PORT")
	if port != "" {
		return ":" + port
	}
	return ":8080"
}

// GroupingMarginOfError is the tolerance (in ms) under which two adjacent
// inter-event intervals count as equal when extracting flat runs.
const GroupingMarginOfError float64 = 3

// RepetitionTolerance is the max difference (in ms, exclusive) between the
// deciding members' delta times for two groups to count as repetitions.
const RepetitionTolerance float64 = 3
