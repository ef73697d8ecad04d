package kitti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackletXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>
<boost_serialization signature="serialization::archive" version="9">
<tracklets class_id="0" tracking_level="0" version="0">
  <count>2</count>
  <item_version>1</item_version>
  <item class_id="1" tracking_level="0" version="1">
    <objectType>Car</objectType>
    <h>1.50</h>
    <w>1.80</w>
    <l>4.20</l>
    <first_frame>10</first_frame>
    <poses class_id="2" tracking_level="0" version="0">
      <count>2</count>
      <item_version>2</item_version>
      <item class_id="3" tracking_level="0" version="2">
        <tx>5.0</tx><ty>-2.0</ty><tz>-0.8</tz>
        <rx>0</rx><ry>0</ry><rz>1.57</rz>
        <state>1</state>
        <occlusion>0</occlusion><occlusion_kf>0</occlusion_kf>
        <truncation>0</truncation>
        <amt_occlusion>0.0</amt_occlusion><amt_occlusion_kf>-1</amt_occlusion_kf>
        <amt_border_l>0.0</amt_border_l><amt_border_r>0.0</amt_border_r><amt_border_kf>-1</amt_border_kf>
      </item>
      <item>
        <tx>5.5</tx><ty>-2.1</ty><tz>-0.8</tz>
        <rx>0</rx><ry>0</ry><rz>1.60</rz>
        <state>1</state>
        <occlusion>1</occlusion><occlusion_kf>0</occlusion_kf>
        <truncation>0</truncation>
        <amt_occlusion>0.3</amt_occlusion><amt_occlusion_kf>-1</amt_occlusion_kf>
        <amt_border_l>0.0</amt_border_l><amt_border_r>0.0</amt_border_r><amt_border_kf>-1</amt_border_kf>
      </item>
    </poses>
    <finished>1</finished>
  </item>
  <item>
    <objectType>Pedestrian</objectType>
    <h>1.70</h>
    <w>0.60</w>
    <l>0.80</l>
    <first_frame>0</first_frame>
    <poses>
      <count>0</count>
      <item_version>2</item_version>
    </poses>
    <finished>1</finished>
  </item>
</tracklets>
</boost_serialization>
`

func TestLoadTracklets(t *testing.T) {
	path := writeTempFile(t, "tracklet_labels.xml", trackletXML)

	tracklets, err := LoadTracklets(path)
	require.NoError(t, err)
	require.Len(t, tracklets, 2)

	car := tracklets[0]
	assert.Equal(t, "Car", car.ObjectType)
	assert.InDelta(t, 1.8, car.W, 1e-12)
	assert.InDelta(t, 4.2, car.L, 1e-12)
	assert.Equal(t, 10, car.FirstFrame)
	require.Len(t, car.Poses, 2)
	assert.InDelta(t, 5.0, car.Poses[0].TX, 1e-12)
	assert.InDelta(t, 1.57, car.Poses[0].RZ, 1e-12)
	assert.Equal(t, 1, car.Poses[1].Occlusion)
	assert.InDelta(t, 0.3, car.Poses[1].AmtOcclusion, 1e-12)

	assert.Equal(t, "Pedestrian", tracklets[1].ObjectType)
	assert.Empty(t, tracklets[1].Poses)
}

func TestLoadTrackletsCountMismatch(t *testing.T) {
	broken := `<boost_serialization><tracklets><count>3</count></tracklets></boost_serialization>`
	path := writeTempFile(t, "bad.xml", broken)

	_, err := LoadTracklets(path)
	assert.Error(t, err)
}

func TestTrackletBirdsEyeBoxes(t *testing.T) {
	path := writeTempFile(t, "tracklet_labels.xml", trackletXML)
	tracklets, err := LoadTracklets(path)
	require.NoError(t, err)

	boxes, err := tracklets[0].BirdsEyeBoxes()
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	for _, box := range boxes {
		assert.Equal(t, 4, box.VertexCount())
		assert.InDelta(t, 1.8*4.2, box.Area(), 1e-9)
	}
}
