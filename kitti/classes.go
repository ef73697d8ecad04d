// Package kitti - loaders for the KITTI dataset layout: object label text,
// calibration key/value files, timestamp lists, velodyne point-cloud scans,
// camera images and XML tracklet annotations.
//
// Loaders are stateless file-to-value conversions. Annotations bridge to the
// geometry package by exposing bird's-eye-view oriented boxes suitable for
// overlap metrics.
package kitti

import "github.com/pkg/errors"

// ObjectClass identifies a KITTI annotation class.
type ObjectClass int

const (
	DontCare ObjectClass = iota
	Car
	Van
	Truck
	Pedestrian
	PersonSitting
	Cyclist
	Tram
	Misc
)

// classNames uses the spellings found in the label files.
var classNames = map[ObjectClass]string{
	DontCare:      "DontCare",
	Car:           "Car",
	Van:           "Van",
	Truck:         "Truck",
	Pedestrian:    "Pedestrian",
	PersonSitting: "Person_sitting",
	Cyclist:       "Cyclist",
	Tram:          "Tram",
	Misc:          "Misc",
}

var nameToClass = func() map[string]ObjectClass {
	m := make(map[string]ObjectClass, len(classNames))
	for c, n := range classNames {
		m[n] = c
	}
	return m
}()

func (c ObjectClass) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return "Unknown"
}

// ParseObjectClass maps a label-file class name to its ObjectClass.
func ParseObjectClass(name string) (ObjectClass, error) {
	c, ok := nameToClass[name]
	if !ok {
		return DontCare, errors.Errorf("kitti: unknown object class %q", name)
	}
	return c, nil
}
