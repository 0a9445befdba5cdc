package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/rhythmdex/beatmap"
	"github.com/jsphweid/rhythmdex/midi"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/rhythm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyzes the rhythm of one file",
	Long:  `Analyzes the rhythm of one .osu or .mid/.midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		analyze(args[0])
	},
}

func readOnsets(path string) ([]float64, error) {
	switch {
	case strings.HasSuffix(path, ".osu"):
		return beatmap.ReadOnsets(path)
	case strings.HasSuffix(path, ".mid"), strings.HasSuffix(path, ".midi"):
		return midi.ReadOnsets(path)
	}
	return nil, fmt.Errorf("unsupported file type: %v", path)
}

func buildChainFromPath(path string) ([]*rhythm.Group, int, error) {
	onsets, err := readOnsets(path)
	if err != nil {
		return nil, 0, err
	}
	events := model.NewTimedEvents(onsets)
	chain, err := rhythm.BuildChain(events)
	if err != nil {
		return nil, 0, err
	}
	return chain, len(events), nil
}

func printChain(chain []*rhythm.Group) {
	var repetitions int
	for i, g := range chain {
		line := fmt.Sprintf("group %3d: start=%8.1fms events=%2d", i, g.StartTime(), len(g.Members))
		if ei, ok := g.EventInterval(); ok {
			line += fmt.Sprintf(" interval=%7.1fms ratio=%5.2f", ei, g.EventIntervalRatio)
		}
		if g.Previous != nil {
			line += fmt.Sprintf(" spacing=%7.1fms", g.StartTimeInterval)
			if g.IsRepetitionOf(g.Previous) {
				repetitions += 1
				line += " (repeat)"
			}
		}
		fmt.Println(line)
	}
	fmt.Printf("groups: %v\n", len(chain))
	fmt.Printf("repetitions of previous group: %v\n", repetitions)
}

func analyze(path string) {
	chain, numEvents, err := buildChainFromPath(path)
	if err != nil {
		panic("Could not analyze because: " + err.Error())
	}
	fmt.Printf("events: %v\n", numEvents)
	printChain(chain)
}
