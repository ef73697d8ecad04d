package kitti

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avlab/drivescene/geometry"
)

// Label is one object annotation in the KITTI object-label text format.
// Distances are meters in the camera frame (x right, y down, z forward).
type Label struct {
	Class     ObjectClass
	Truncated float64
	Occluded  int
	// Observation angle of the object, [-pi, pi].
	Alpha float64
	// Image-plane bounding box, pixels (min = left/top, max = right/bottom).
	Box2D geometry.AABox2D
	// 3-D extents.
	Height, Width, Length float64
	// 3-D location of the box bottom center.
	X, Y, Z float64
	// Rotation around the camera-frame Y axis, [-pi, pi].
	RotationY float64
	// Detection score; only present in result files.
	Score    float64
	HasScore bool
}

// LoadLabels reads labels or detection results in KITTI format, one object
// per line, 15 fields plus an optional score.
func LoadLabels(path string) ([]Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: open label file")
	}
	defer f.Close()

	var labels []Label
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l, err := parseLabel(line)
		if err != nil {
			return nil, errors.Wrapf(err, "kitti: %s line %d", path, lineNo)
		}
		labels = append(labels, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "kitti: read label file")
	}
	return labels, nil
}

func parseLabel(line string) (Label, error) {
	fields := strings.Fields(line)
	if len(fields) != 15 && len(fields) != 16 {
		return Label{}, errors.Errorf("expected 15 or 16 fields, got %d", len(fields))
	}

	class, err := ParseObjectClass(fields[0])
	if err != nil {
		return Label{}, err
	}
	vals := make([]float64, len(fields)-1)
	for i, s := range fields[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Label{}, errors.Wrapf(err, "field %d", i+1)
		}
		vals[i] = v
	}

	l := Label{
		Class:     class,
		Truncated: vals[0],
		Occluded:  int(vals[1]),
		Alpha:     vals[2],
		Box2D: geometry.AABox2D{
			MinX: vals[3], MinY: vals[4],
			MaxX: vals[5], MaxY: vals[6],
		},
		Height: vals[7], Width: vals[8], Length: vals[9],
		X: vals[10], Y: vals[11], Z: vals[12],
		RotationY: vals[13],
	}
	if len(vals) == 15 {
		l.Score = vals[14]
		l.HasScore = true
	}
	return l, nil
}

// BirdsEyeBox projects the label onto the ground plane as an oriented box
// polygon: center (x, z), extents (width, length), heading -rotation_y
// (rotation_y is clockwise about the downward camera Y axis).
func (l Label) BirdsEyeBox() (geometry.ConvexPolygon2D, error) {
	box, err := geometry.OrientedBox(l.X, l.Z, l.Width, l.Length, -l.RotationY)
	if err != nil {
		return geometry.ConvexPolygon2D{}, errors.Wrap(err, "kitti: label box")
	}
	return box, nil
}
