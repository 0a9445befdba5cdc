package beatmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleBeatmap = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 1

[Metadata]
Title:Example
Artist:Someone

[TimingPoints]
24,333.333333333333,4,1,0,100,1,0

// comment line
[HitObjects]
256,192,24,1,0,0:0:0:0:
256,192,357,1,0,0:0:0:0:
256,192,691,1,8,0:0:0:0:
256,192,1024,5,4,0:0:0:0:
`

func TestOnsetsParsesHitObjectTimes(t *testing.T) {
	onsets, err := Onsets(strings.NewReader(sampleBeatmap))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{24, 357, 691, 1024}, onsets)
}

func TestOnsetsIgnoresOtherSections(t *testing.T) {
	content := "[TimingPoints]\n0,500,4,1,0,100,1,0\n"
	onsets, err := Onsets(strings.NewReader(content))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, len(onsets))
}

func TestOnsetsSortsOutOfOrderObjects(t *testing.T) {
	content := "[HitObjects]\n0,0,500,1,0\n0,0,100,1,0\n0,0,300,1,0\n"
	onsets, err := Onsets(strings.NewReader(content))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]float64{100, 300, 500}, onsets)
}

func TestOnsetsMalformedLine(t *testing.T) {
	content := "[HitObjects]\nnot a hit object\n"
	_, err := Onsets(strings.NewReader(content))
	assert.Error(t, err)
}
