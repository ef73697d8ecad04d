package kitti

import (
	"encoding/xml"
	"os"

	"github.com/pkg/errors"

	"github.com/avlab/drivescene/geometry"
)

// Pose is one per-frame object pose inside a tracklet. Translation is the
// velodyne frame in meters, rotation in radians.
type Pose struct {
	TX float64 `xml:"tx"`
	TY float64 `xml:"ty"`
	TZ float64 `xml:"tz"`
	RX float64 `xml:"rx"`
	RY float64 `xml:"ry"`
	RZ float64 `xml:"rz"`

	State          int     `xml:"state"`
	Occlusion      int     `xml:"occlusion"`
	OcclusionKF    int     `xml:"occlusion_kf"`
	Truncation     int     `xml:"truncation"`
	AmtOcclusion   float64 `xml:"amt_occlusion"`
	AmtOcclusionKF float64 `xml:"amt_occlusion_kf"`
	AmtBorderL     float64 `xml:"amt_border_l"`
	AmtBorderR     float64 `xml:"amt_border_r"`
	AmtBorderKF    float64 `xml:"amt_border_kf"`
}

// Tracklet is one annotated object trajectory: a fixed-size box followed
// through a sequence of frames.
type Tracklet struct {
	ObjectType string  `xml:"objectType"`
	H          float64 `xml:"h"`
	W          float64 `xml:"w"`
	L          float64 `xml:"l"`
	FirstFrame int     `xml:"first_frame"`
	Poses      []Pose  `xml:"poses>item"`
	Finished   int     `xml:"finished"`
}

// trackletFile mirrors the boost-serialization XML archive layout.
type trackletFile struct {
	XMLName   xml.Name `xml:"boost_serialization"`
	Tracklets struct {
		Count int        `xml:"count"`
		Items []Tracklet `xml:"item"`
	} `xml:"tracklets"`
}

// LoadTracklets parses a tracklet_labels.xml annotation file.
func LoadTracklets(path string) ([]Tracklet, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: read tracklet file")
	}
	var file trackletFile
	if err := xml.Unmarshal(buf, &file); err != nil {
		return nil, errors.Wrapf(err, "kitti: parse tracklet file %s", path)
	}
	if file.Tracklets.Count != len(file.Tracklets.Items) {
		return nil, errors.Errorf("kitti: tracklet file %s declares %d tracklets, contains %d",
			path, file.Tracklets.Count, len(file.Tracklets.Items))
	}
	return file.Tracklets.Items, nil
}

// BirdsEyeBoxes returns one ground-plane oriented box per pose: center
// (tx, ty), extents (w, l), heading rz.
func (t Tracklet) BirdsEyeBoxes() ([]geometry.ConvexPolygon2D, error) {
	boxes := make([]geometry.ConvexPolygon2D, 0, len(t.Poses))
	for i, p := range t.Poses {
		box, err := geometry.OrientedBox(p.TX, p.TY, t.W, t.L, p.RZ)
		if err != nil {
			return nil, errors.Wrapf(err, "kitti: tracklet pose %d", i)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}
