// Package metrics - overlap metrics over oriented detection boxes, built on
// the geometry engine. All functions are pure and safe for concurrent use.
package metrics

import (
	"runtime"
	"sync"

	"github.com/avlab/drivescene/geometry"
)

// RotatedIoU returns the intersection-over-union of two convex polygons by
// inclusion-exclusion. Empty or non-overlapping operands yield 0.
func RotatedIoU(a, b geometry.ConvexPolygon2D) float64 {
	inter := a.Intersect(b).Area()
	union := a.Area() + b.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// IoUMatrix computes the pairwise IoU between detections and ground truths as
// a row-major len(dets) x len(gts) matrix. Rows are distributed over a pool
// of workers goroutines; workers <= 0 uses one per CPU. Each worker writes a
// disjoint slice of the result, so no locking is needed.
func IoUMatrix(dets, gts []geometry.ConvexPolygon2D, workers int) []float64 {
	out := make([]float64, len(dets)*len(gts))
	if len(dets) == 0 || len(gts) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(dets) {
		workers = len(dets)
	}

	rows := make(chan int, len(dets))
	for i := range dets {
		rows <- i
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				for j := range gts {
					out[i*len(gts)+j] = RotatedIoU(dets[i], gts[j])
				}
			}
		}()
	}
	wg.Wait()
	return out
}
