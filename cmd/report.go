package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/rhythmdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a rhythm report over a directory",
	Long:  `Creates a rhythm report over a directory of .osu and midi files`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need at least 1 arg...")
		}
		var maxNum int
		if len(args) == 2 {
			arg2, err := strconv.Atoi(args[1])
			if err != nil {
				panic(err)
			}
			maxNum = arg2
		}
		report(args[0], maxNum)
	},
}

type rhythmReport struct {
	numFiles      int64
	numEvents     []int64
	numGroups     []int64
	numRepeats    int64
	numLoneGroups int64
}

func report(dir string, maxNum int) {
	var rep rhythmReport
	paths := util.GatherAllRhythmPaths(dir, maxNum)
	for _, path := range paths {
		chain, numEvents, err := buildChainFromPath(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		rep.numFiles += 1
		rep.numEvents = append(rep.numEvents, int64(numEvents))
		rep.numGroups = append(rep.numGroups, int64(len(chain)))
		for _, g := range chain {
			if len(g.Members) == 1 {
				rep.numLoneGroups += 1
			}
			if g.Previous != nil && g.IsRepetitionOf(g.Previous) {
				rep.numRepeats += 1
			}
		}
	}

	totalEvents := util.Sum(rep.numEvents)
	totalGroups := util.Sum(rep.numGroups)
	fmt.Printf("files analyzed: %v\n", rep.numFiles)
	fmt.Printf("total events: %v\n", totalEvents)
	fmt.Printf("total groups: %v\n", totalGroups)
	if totalGroups > 0 {
		fmt.Printf("avg events per group: %v\n", float64(totalEvents)/float64(totalGroups))
		fmt.Printf("single-event groups: %v\n", rep.numLoneGroups)
		fmt.Printf("repetitions of previous group: %v\n", rep.numRepeats)
	}
}
