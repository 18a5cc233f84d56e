package algorithms

import (
	"math"
	"slices"

	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/bench/workload"
)

// Pair is the closest pair of points found in a point set.
type Pair struct {
	A        workload.Point `json:"a"`
	B        workload.Point `json:"b"`
	Distance float64        `json:"distance"`
}

// DistanceTolerance is the absolute tolerance used to compare pair distances.
const DistanceTolerance = 1e-9

func distance(p, q workload.Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// BruteForceClosestPair compares every pair of points.
func BruteForceClosestPair(points []workload.Point) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, bench.InvalidParameter("points", len(points), "closest pair needs at least two points")
	}
	best := Pair{Distance: math.Inf(1)}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := distance(points[i], points[j]); d < best.Distance {
				best = Pair{A: points[i], B: points[j], Distance: d}
			}
		}
	}
	return best, nil
}

// DivideConquerClosestPair finds the closest pair in O(n log n) by splitting
// on the median x coordinate and scanning the strip around it.
func DivideConquerClosestPair(points []workload.Point) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, bench.InvalidParameter("points", len(points), "closest pair needs at least two points")
	}

	byX := slices.Clone(points)
	slices.SortFunc(byX, func(a, b workload.Point) int {
		if a.X != b.X {
			return cmpFloat(a.X, b.X)
		}
		return cmpFloat(a.Y, b.Y)
	})
	scratch := make([]workload.Point, len(byX))
	return closest(byX, scratch), nil
}

// closest expects pts sorted by x and leaves them sorted by y.
func closest(pts, scratch []workload.Point) Pair {
	n := len(pts)
	if n <= 3 {
		best := Pair{Distance: math.Inf(1)}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := distance(pts[i], pts[j]); d < best.Distance {
					best = Pair{A: pts[i], B: pts[j], Distance: d}
				}
			}
		}
		slices.SortFunc(pts, byY)
		return best
	}

	mid := n / 2
	midX := pts[mid].X

	best := closest(pts[:mid], scratch[:mid])
	if right := closest(pts[mid:], scratch[mid:]); right.Distance < best.Distance {
		best = right
	}

	mergeByY(pts, mid, scratch)

	strip := scratch[:0]
	for _, p := range pts {
		if math.Abs(p.X-midX) < best.Distance {
			strip = append(strip, p)
		}
	}
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < best.Distance; j++ {
			if d := distance(strip[i], strip[j]); d < best.Distance {
				best = Pair{A: strip[i], B: strip[j], Distance: d}
			}
		}
	}
	return best
}

// mergeByY merges the y-sorted halves pts[:mid] and pts[mid:] in place.
func mergeByY(pts []workload.Point, mid int, scratch []workload.Point) {
	merged := scratch[:0]
	i, j := 0, mid
	for i < mid && j < len(pts) {
		if pts[i].Y <= pts[j].Y {
			merged = append(merged, pts[i])
			i++
		} else {
			merged = append(merged, pts[j])
			j++
		}
	}
	merged = append(merged, pts[i:mid]...)
	merged = append(merged, pts[j:]...)
	copy(pts, merged)
}

func byY(a, b workload.Point) int {
	return cmpFloat(a.Y, b.Y)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func bruteForceVariant(points workload.PointSet) (Pair, float64, error) {
	p, err := BruteForceClosestPair(points)
	return p, p.Distance, err
}

func divideConquerVariant(points workload.PointSet) (Pair, float64, error) {
	p, err := DivideConquerClosestPair(points)
	return p, p.Distance, err
}
