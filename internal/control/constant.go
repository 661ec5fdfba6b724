package control

import "github.com/san-kum/reaktor/internal/reactor"

// Constant rotates the drums at a fixed speed [degrees/s].
type Constant struct {
	Speed float64
}

func NewConstant(speed float64) *Constant {
	return &Constant{Speed: speed}
}

func (c *Constant) DrumSpeed(t float64, s reactor.State) float64 {
	return c.Speed
}
