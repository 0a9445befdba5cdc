package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/rhythm"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Analyzes live midi input",
	Long:  `Analyzes note onsets played on the first midi input port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	var mu sync.Mutex
	var onsets []float64
	debounced := debounce.New(500 * time.Millisecond)

	reanalyze := func() {
		mu.Lock()
		current := make([]float64, len(onsets))
		copy(current, onsets)
		mu.Unlock()

		chain, err := rhythm.BuildChain(model.NewTimedEvents(current))
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return
		}
		printChain(chain)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			mu.Lock()
			onsets = append(onsets, float64(timestampms))
			mu.Unlock()
			debounced(reanalyze)
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	fmt.Println("Listening for midi input, press enter to quit...")
	fmt.Scanln()
}
