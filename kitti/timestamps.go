package kitti

import (
	"bufio"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// timestampLayout matches the raw-data stamps, e.g.
// "2011-09-26 13:02:25.594360375".
const timestampLayout = "2006-01-02 15:04:05.999999999"

// LoadTimestamps reads one timestamp per line. With formatted set, lines are
// full date stamps in the raw-data layout; otherwise they are fractional
// seconds since the Unix epoch.
func LoadTimestamps(path string, formatted bool) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: open timestamp file")
	}
	defer f.Close()

	var stamps []time.Time
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var ts time.Time
		if formatted {
			ts, err = time.Parse(timestampLayout, line)
		} else {
			var secs float64
			secs, err = strconv.ParseFloat(line, 64)
			if err == nil {
				whole, frac := math.Modf(secs)
				ts = time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
			}
		}
		if err != nil {
			return nil, errors.Wrapf(err, "kitti: %s line %d", path, lineNo)
		}
		stamps = append(stamps, ts)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kitti: read timestamp file")
	}
	return stamps, nil
}
