package media

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`Duration:\s*(\d+):(\d+):(\d+)\.(\d+)`)

// ParseFFmpegDuration extracts the "Duration: HH:MM:SS.cc" line from
// ffmpeg banner output and returns seconds.
func ParseFFmpegDuration(output string) (float64, error) {
	m := durationRe.FindStringSubmatch(output)
	if m == nil {
		return 0, fmt.Errorf("no duration found in ffmpeg output")
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])

	frac, _ := strconv.ParseFloat("0."+m[4], 64)

	return float64(h*3600+min*60+s) + frac, nil
}
