// Package density provides the scalar fertility field that drives
// vegetation placement.
package density

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/orbis/pkg/math"
)

// Map is a 2D grid of values in [0,1] sampled over the planet surface via
// an equirectangular projection. Immutable after creation.
type Map struct {
	data   []float32
	width  int
	height int
}

// NewUniform returns a map with every cell set to value.
func NewUniform(width, height int, value float32) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("density: dimensions must be positive, got %dx%d", width, height)
	}

	data := make([]float32, width*height)
	for i := range data {
		data[i] = value
	}
	return &Map{data: data, width: width, height: height}, nil
}

// GenerateNatural returns a procedurally generated map with natural
// distribution patterns: three octaves of value noise on a 0.5 baseline,
// sparse bare patches, and dense clusters.
func GenerateNatural(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("density: dimensions must be positive, got %dx%d", width, height)
	}

	data := make([]float32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float32(x) / float32(width)
			v := float32(y) / float32(height)

			d := float32(0.5)

			// Continent, region, and local scale octaves
			d += noise2D(u*4, v*4) * 0.3
			d += noise2D(u*8, v*8) * 0.2
			d += noise2D(u*16, v*16) * 0.1

			// Sparse bare patches
			if noise2D(u*6+100, v*6+100) > 0.7 {
				d *= 0.1
			}

			// Dense clusters
			if noise2D(u*5+200, v*5+200) > 0.6 && d < 0.8 {
				d = 0.8
			}

			if d < 0 {
				d = 0
			} else if d > 1 {
				d = 1
			}

			data[y*width+x] = d
		}
	}

	return &Map{data: data, width: width, height: height}, nil
}

// noise2D is deterministic value noise: hashed lattice corners blended
// with smoothstep weights. Output is roughly in [-1, 1].
func noise2D(x, y float32) float32 {
	xi := int32(gomath.Floor(float64(x)))
	yi := int32(gomath.Floor(float64(y)))
	xf := x - float32(xi)
	yf := y - float32(yi)

	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	a := hash2D(xi, yi)
	b := hash2D(xi+1, yi)
	c := hash2D(xi, yi+1)
	d := hash2D(xi+1, yi+1)

	k1 := a*(1-u) + b*u
	k2 := c*(1-u) + d*u

	return k1*(1-v) + k2*v
}

// hash2D is a fixed integer mixing function so the same lattice coordinate
// always yields the same value across runs.
func hash2D(x, y int32) float32 {
	n := x + y*57
	n = (n << 13) ^ n
	nn := n*(n*n*15731+789221) + 1376312589
	return 1 - float32(nn&0x7fffffff)/1073741824.0
}

// SampleUV samples with bilinear interpolation. U wraps around (the map
// covers the full equator); V clamps at the poles.
func (m *Map) SampleUV(u, v float32) float32 {
	u = u - float32(gomath.Floor(float64(u)))
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	x := u * float32(m.width-1)
	y := v * float32(m.height-1)

	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	if x1 > m.width-1 {
		x1 = m.width - 1
	}
	y1 := y0 + 1
	if y1 > m.height-1 {
		y1 = m.height - 1
	}

	fx := x - float32(x0)
	fy := y - float32(y0)

	v00 := m.data[y0*m.width+x0]
	v10 := m.data[y0*m.width+x1]
	v01 := m.data[y1*m.width+x0]
	v11 := m.data[y1*m.width+x1]

	top := v00*(1-fx) + v10*fx
	bottom := v01*(1-fx) + v11*fx

	return top*(1-fy) + bottom*fy
}

// SampleSpherical samples the map at a 3D position on the planet surface.
// The projection matches the terrain mesh UVs: u from longitude, v from
// latitude.
func (m *Map) SampleSpherical(position math.Vec3, planetRadius float32) float32 {
	n := position.Scale(1 / planetRadius)

	theta := gomath.Atan2(float64(n.Z), float64(n.X))
	phi := gomath.Asin(float64(clamp(n.Y, -1, 1)))

	u := float32((theta + gomath.Pi) / (2 * gomath.Pi))
	v := float32((phi + gomath.Pi/2) / gomath.Pi)

	return m.SampleUV(u, v)
}

// Dimensions returns the grid width and height.
func (m *Map) Dimensions() (int, int) {
	return m.width, m.height
}

// TextureData returns the field as single-channel 8-bit texture data.
func (m *Map) TextureData() []byte {
	out := make([]byte, len(m.data))
	for i, d := range m.data {
		out[i] = byte(d * 255)
	}
	return out
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
