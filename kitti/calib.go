package kitti

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Calib holds the numeric entries of a KITTI calibration file keyed by name
// (P0..P3, R0_rect, Tr_velo_to_cam, ...).
type Calib map[string][]float64

// LoadCalib parses a calibration file of "KEY: v v v ..." lines.
//
// Lines whose values fail to parse as floats (the calib_time date line) are
// skipped, matching the dataset convention that only numeric entries matter.
func LoadCalib(path string) (Calib, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: open calib file")
	}
	defer f.Close()

	calib := make(Calib)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		vals := make([]float64, 0, len(fields))
		ok := true
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if ok && len(vals) > 0 {
			calib[strings.TrimSpace(key)] = vals
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kitti: read calib file")
	}
	return calib, nil
}

// Matrix reshapes the entry under key into a rows x cols dense matrix.
func (c Calib) Matrix(key string, rows, cols int) (*mat.Dense, error) {
	vals, ok := c[key]
	if !ok {
		return nil, errors.Errorf("kitti: calib key %q not found", key)
	}
	if len(vals) != rows*cols {
		return nil, errors.Errorf("kitti: calib key %q has %d values, want %dx%d", key, len(vals), rows, cols)
	}
	return mat.NewDense(rows, cols, vals), nil
}

// Projection returns the 3x4 camera projection matrix under key (P0..P3).
func (c Calib) Projection(key string) (*mat.Dense, error) {
	return c.Matrix(key, 3, 4)
}
