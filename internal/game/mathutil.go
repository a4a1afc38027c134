package game

import "math"

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hashCoords returns a deterministic 64-bit hash for an integer chunk
// coordinate pair. Neighbouring coordinates produce uncorrelated values,
// so per-chunk seeds never show grid seams.
func hashCoords(cx, cy int) uint64 {
	h := uint64(uint32(cx)) * 0x9E3779B185EBCA87
	h ^= uint64(uint32(cy)) * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

// Rand is a tiny deterministic RNG (64-bit LCG, Knuth MMIX constants).
// Re-seeding with the same value reproduces the sequence from the start.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	r.s = r.s*6364136223846793005 + 1442695040888963407
	return r.s
}

// Float64 returns a value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// floorDiv performs mathematical floor division for integers.
func floorDiv(a, b int) int {
	q := a / b
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absI(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// angDiff returns the shortest signed angle from a to b, in (-π, π].
func angDiff(a, b float64) float64 {
	d := b - a
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// segmentDistance returns the distance from point (px,py) to the segment
// (x0,y0)-(x1,y1).
func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := clampF(((px-x0)*dx+(py-y0)*dy)/lenSq, 0, 1)
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}
