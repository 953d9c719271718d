package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Floor      RGB
	FloorAlt   RGB
	WallLow    RGB
	WallMid    RGB
	WallHigh   RGB
	Rim        RGB
	HazardHot  RGB
	HazardCool RGB
	BandGlow   RGB
	Ship       RGB
	ShipTrail  RGB
	Exhaust    RGB
	Sky        RGB
}{
	Floor:      RGB{R: 46, G: 38, B: 52},
	FloorAlt:   RGB{R: 54, G: 44, B: 60},
	WallLow:    RGB{R: 96, G: 62, B: 78},
	WallMid:    RGB{R: 158, G: 96, B: 86},
	WallHigh:   RGB{R: 224, G: 168, B: 120},
	Rim:        RGB{R: 250, G: 214, B: 160},
	HazardHot:  RGB{R: 255, G: 64, B: 40},
	HazardCool: RGB{R: 255, G: 150, B: 40},
	BandGlow:   RGB{R: 255, G: 90, B: 120},
	Ship:       RGB{R: 220, G: 240, B: 255},
	ShipTrail:  RGB{R: 120, G: 190, B: 255},
	Exhaust:    RGB{R: 255, G: 180, B: 90},
	Sky:        RGB{R: 16, G: 12, B: 24},
}
