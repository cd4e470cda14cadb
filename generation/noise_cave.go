package generation

import (
	"math"

	"ebiten-delve/dice"
	"ebiten-delve/gamemap"
)

// perlinNoise is a classic gradient-noise generator. The permutation
// table is shuffled from the pipeline's dice roller so levels stay
// reproducible per seed.
type perlinNoise struct {
	octaves     int
	scale       float64
	permutation []int
}

func newPerlinNoise(rng dice.Roller, octaves int, scale float64) *perlinNoise {
	p := &perlinNoise{
		octaves:     octaves,
		scale:       scale,
		permutation: make([]int, 256),
	}
	for i := range p.permutation {
		p.permutation[i] = i
	}
	// Fisher-Yates off the shared roller.
	for i := len(p.permutation) - 1; i > 0; i-- {
		j := rng.Range(0, i+1)
		p.permutation[i], p.permutation[j] = p.permutation[j], p.permutation[i]
	}
	return p
}

// noise2D sums octaves of gradient noise, normalized to roughly [-1, 1].
func (p *perlinNoise) noise2D(x, y float64) float64 {
	x /= p.scale
	y /= p.scale

	var noise float64
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < p.octaves; i++ {
		noise += p.perlin(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return noise / maxValue
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := y
	if h < 4 {
		u = x
	}
	v := x
	if h < 12 {
		v = y
	}

	result := u
	if h&1 != 0 {
		result = -u
	}
	if h&2 != 0 {
		result -= v
	} else {
		result += v
	}
	return result
}

func (p *perlinNoise) perlin(x, y float64) float64 {
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	perm := p.permutation
	aa := perm[(perm[X]+Y)&255]
	ab := perm[(perm[X]+Y+1)&255]
	ba := perm[(perm[(X+1)&255]+Y)&255]
	bb := perm[(perm[(X+1)&255]+Y+1)&255]

	return lerp(
		lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)
}

// NoiseCaveBuilder drafts cave layouts by thresholding layered gradient
// noise: smooth open caverns rather than the cellular automata's grainy
// blobs. Isolated pockets are expected and left to a culling stage.
type NoiseCaveBuilder struct {
	Octaves   int
	Scale     float64
	Threshold float64
}

// NewNoiseCaveBuilder creates the builder with the standard tuning.
func NewNoiseCaveBuilder() *NoiseCaveBuilder {
	return &NoiseCaveBuilder{Octaves: 3, Scale: 10.0, Threshold: 0.0}
}

// BuildInitial opens every non-border tile whose noise value clears the
// threshold.
func (b *NoiseCaveBuilder) BuildInitial(rng dice.Roller, build *BuilderMap) error {
	noise := newPerlinNoise(rng, b.Octaves, b.Scale)

	m := build.Map
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if noise.noise2D(float64(x), float64(y)) > b.Threshold {
				m.Tiles[m.Index(x, y)] = gamemap.TileFloor
			}
		}
	}
	build.TakeSnapshot()
	return nil
}
