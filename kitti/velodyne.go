package kitti

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// pointStride is the number of float32 values per velodyne point:
// x, y, z, reflectance.
const pointStride = 4

// LoadVelodyneScan reads a velodyne scan into an (N, 4) float32 tensor of
// x, y, z, reflectance rows.
//
// Arguments:
//   - path: scan file path.
//   - binary: raw little-endian float32 stream when true, whitespace-
//     separated text when false.
//
// Returns:
//   - The scan tensor, shape (N, 4).
//   - An error when the file cannot be read or its size is not a whole
//     number of points.
func LoadVelodyneScan(path string, binary bool) (*tensor.Dense, error) {
	var (
		vals []float32
		err  error
	)
	if binary {
		vals, err = readVelodyneBinary(path)
	} else {
		vals, err = readVelodyneText(path)
	}
	if err != nil {
		return nil, err
	}
	n := len(vals) / pointStride
	return tensor.New(
		tensor.WithShape(n, pointStride),
		tensor.WithBacking(vals),
	), nil
}

func readVelodyneBinary(path string) ([]float32, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: read velodyne scan")
	}
	if len(buf)%(pointStride*4) != 0 {
		return nil, errors.Errorf("kitti: velodyne scan %s: %d bytes is not a whole number of points", path, len(buf))
	}
	vals := make([]float32, len(buf)/4)
	for i := range vals {
		bits := binary.LittleEndian.Uint32(buf[i*4:])
		vals[i] = math.Float32frombits(bits)
	}
	return vals, nil
}

func readVelodyneText(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: open velodyne scan")
	}
	defer f.Close()

	var vals []float32
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != pointStride {
			return nil, errors.Errorf("kitti: %s line %d: expected %d values, got %d", path, lineNo, pointStride, len(fields))
		}
		for _, s := range fields {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "kitti: %s line %d", path, lineNo)
			}
			vals = append(vals, float32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kitti: read velodyne scan")
	}
	return vals, nil
}

// PointRanges returns the euclidean range of every point in a scan tensor.
func PointRanges(scan *tensor.Dense) ([]float32, error) {
	shape := scan.Shape()
	if len(shape) != 2 || shape[1] != pointStride {
		return nil, errors.Errorf("kitti: expected an (N, %d) scan tensor, got %v", pointStride, shape)
	}
	data, ok := scan.Data().([]float32)
	if !ok {
		return nil, errors.New("kitti: scan tensor is not float32")
	}
	ranges := make([]float32, shape[0])
	for i := range ranges {
		x := data[i*pointStride]
		y := data[i*pointStride+1]
		z := data[i*pointStride+2]
		ranges[i] = math32.Sqrt(x*x + y*y + z*z)
	}
	return ranges, nil
}
