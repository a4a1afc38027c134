package game

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Biome classifies a region of the world. It is a pure function of world
// position (see BiomeAt), so it never depends on chunk boundaries.
type Biome int

const (
	BiomeDesert Biome = iota
	BiomeBeach
	BiomeForest
	BiomeCity
	BiomeSnow
	BiomeVolcanic
	biomeCount
)

func (b Biome) String() string {
	switch b {
	case BiomeDesert:
		return "desert"
	case BiomeBeach:
		return "beach"
	case BiomeForest:
		return "forest"
	case BiomeCity:
		return "city"
	case BiomeSnow:
		return "snow"
	case BiomeVolcanic:
		return "volcanic"
	}
	return "unknown"
}

// BiomePalette carries the semantic colours a renderer needs for a biome.
// Nothing in the simulation reads these.
type BiomePalette struct {
	Ground RGB
	Accent RGB
	Decor  RGB
	Water  RGB
}

var biomePalettes = [biomeCount]BiomePalette{
	BiomeDesert: {
		Ground: RGB{R: 212, G: 182, B: 125},
		Accent: RGB{R: 196, G: 160, B: 100},
		Decor:  RGB{R: 96, G: 140, B: 72},
		Water:  RGB{R: 70, G: 150, B: 168},
	},
	BiomeBeach: {
		Ground: RGB{R: 232, G: 214, B: 160},
		Accent: RGB{R: 214, G: 196, B: 140},
		Decor:  RGB{R: 60, G: 128, B: 84},
		Water:  RGB{R: 56, G: 156, B: 190},
	},
	BiomeForest: {
		Ground: RGB{R: 96, G: 132, B: 72},
		Accent: RGB{R: 80, G: 116, B: 62},
		Decor:  RGB{R: 44, G: 88, B: 44},
		Water:  RGB{R: 52, G: 120, B: 150},
	},
	BiomeCity: {
		Ground: RGB{R: 128, G: 128, B: 132},
		Accent: RGB{R: 104, G: 104, B: 110},
		Decor:  RGB{R: 88, G: 112, B: 80},
		Water:  RGB{R: 58, G: 120, B: 146},
	},
	BiomeSnow: {
		Ground: RGB{R: 228, G: 234, B: 240},
		Accent: RGB{R: 204, G: 214, B: 224},
		Decor:  RGB{R: 70, G: 96, B: 80},
		Water:  RGB{R: 120, G: 170, B: 200},
	},
	BiomeVolcanic: {
		Ground: RGB{R: 72, G: 62, B: 60},
		Accent: RGB{R: 56, G: 48, B: 48},
		Decor:  RGB{R: 140, G: 72, B: 40},
		Water:  RGB{R: 170, G: 80, B: 30},
	},
}

func (b Biome) Palette() BiomePalette {
	if b < 0 || b >= biomeCount {
		return biomePalettes[BiomeForest]
	}
	return biomePalettes[b]
}

// Spatial frequencies of the two blended biome lattices. The values are
// irrational-ish multiples of each other so the lattices never line up and
// bucket borders stay wavy instead of grid-aligned.
const (
	biomeFreqCoarse = 1.0 / 2900.0
	biomeFreqFine   = 1.0 / 770.0
	biomeBlend      = 0.65 // weight of the coarse lattice
)

// BiomeAt maps a world position to its biome. The field is continuous in
// world space and stateless: the same point always yields the same biome
// no matter which chunk's generation pass (or no pass at all) asks.
func BiomeAt(x, y float64) Biome {
	coarse := math.Sin(x*biomeFreqCoarse) + math.Cos(y*biomeFreqCoarse*1.37)
	fine := math.Sin((x+y)*biomeFreqFine*0.71) + math.Cos((x-y)*biomeFreqFine)

	// Blend and normalise from [-2,2] to [0,1].
	v := biomeBlend*coarse + (1-biomeBlend)*fine
	t := clampF((v+2)/4, 0, 1)

	switch {
	case t < 0.20:
		return BiomeVolcanic
	case t < 0.36:
		return BiomeDesert
	case t < 0.46:
		return BiomeBeach
	case t < 0.66:
		return BiomeForest
	case t < 0.84:
		return BiomeCity
	default:
		return BiomeSnow
	}
}
