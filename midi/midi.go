package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Onsets closer together than this collapse into one event, so a chord
// counts once on the rhythm timeline.
const chordCollapseMs = 1.0

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// Onsets walks every track and returns the note-start times in milliseconds,
// sorted ascending with simultaneous notes collapsed.
func Onsets(s *smf.SMF) []float64 {
	var micros []int64
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				micros = append(micros, s.TimeAt(absTicks))
			}
		}
	}

	sort.Slice(micros, func(i, j int) bool {
		return micros[i] < micros[j]
	})

	var res []float64
	for _, us := range micros {
		ms := float64(us) / 1000
		if len(res) > 0 && ms-res[len(res)-1] < chordCollapseMs {
			continue
		}
		res = append(res, ms)
	}
	return res
}

// ReadOnsets is the file-path convenience over ReadMidiFile and Onsets.
func ReadOnsets(path string) ([]float64, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return Onsets(s), nil
}
