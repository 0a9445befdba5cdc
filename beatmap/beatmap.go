// Package beatmap reads the hit-object onsets out of .osu beatmap files.
package beatmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

type section int

const (
	secNone section = iota
	secHitObjects
	secOther
)

// ReadOnsets parses a .osu file and returns the hit-object start times in
// milliseconds, sorted ascending.
func ReadOnsets(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening beatmap file... %s", err.Error())
	}
	defer f.Close()
	return Onsets(f)
}

// Onsets parses beatmap content from r. Only the [HitObjects] section is
// consulted; every object contributes its start time, whatever its kind.
func Onsets(r io.Reader) ([]float64, error) {
	var res []float64
	current := secNone

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if line == "[HitObjects]" {
				current = secHitObjects
			} else {
				current = secOther
			}
			continue
		}
		if current != secHitObjects {
			continue
		}

		// x,y,time,type,hitSound,...
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed hit object line: %q", line)
		}
		ms, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed hit object time in line %q: %s", line, err.Error())
		}
		res = append(res, ms)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading beatmap... %s", err.Error())
	}

	sort.Float64s(res)
	return res, nil
}
