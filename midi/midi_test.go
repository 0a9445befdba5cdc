package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// buildTestSMF writes a single-track file at the default 120 BPM where 960
// ticks span 500ms, then reads it back the way production code would.
func buildTestSMF(t *testing.T) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOff(0, 60))
	tr.Add(480, gomidi.NoteOn(0, 62, 100))
	// same tick as the previous note-on, forms a chord
	tr.Add(0, gomidi.NoteOn(0, 65, 100))
	tr.Add(960, gomidi.NoteOn(0, 64, 90))
	tr.Close(0)
	if err := s.Add(tr); err != nil {
		t.Fatalf("could not add track: %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("could not write smf: %v", err)
	}
	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("could not read smf back: %v", err)
	}
	return parsed
}

func TestOnsetsExtractsNoteStarts(t *testing.T) {
	onsets := Onsets(buildTestSMF(t))

	assert := assert.New(t)
	assert.Equal(3, len(onsets))
	assert.InDelta(0, onsets[0], 1)
	assert.InDelta(500, onsets[1], 1)
	assert.InDelta(1000, onsets[2], 1)
}

func TestOnsetsCollapsesChords(t *testing.T) {
	// The chord at 500ms has two note-ons but must yield one onset.
	onsets := Onsets(buildTestSMF(t))

	for i := 1; i < len(onsets); i++ {
		assert.True(t, onsets[i]-onsets[i-1] >= chordCollapseMs)
	}
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile("does-not-exist.mid")
	assert.Error(t, err)
}
