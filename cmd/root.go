package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rhythmdex",
	Short: "Rhythm grouping and interval-ratio analysis",
	Long:  `Partitions timed note onsets into flat rhythm groups and derives interval features.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
