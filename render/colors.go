package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-lockpick/vmath"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbDim        = tcell.NewRGBColor(110, 110, 120) // Help and empty bar cells
	RgbTitle      = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbCylinder      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbCylinderStuck = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbCylinderOpen  = tcell.NewRGBColor(255, 255, 0)   // Gold

	RgbPick         = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbPickBreaking = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbPickBroken   = tcell.NewRGBColor(180, 50, 50)   // Dark Red

	RgbLifeFull  = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbLifeEmpty = tcell.NewRGBColor(255, 0, 0)   // Error Red
)

// LifeColor blends from red at 0 to green at 1
func LifeColor(life float64) tcell.Color {
	t := vmath.Clamp01(life)
	r0, g0, b0 := RgbLifeEmpty.RGB()
	r1, g1, b1 := RgbLifeFull.RGB()
	mix := func(a, b int32) int32 {
		return int32(vmath.Lerp(float64(a), float64(b), t) + 0.5)
	}
	return tcell.NewRGBColor(mix(r0, r1), mix(g0, g1), mix(b0, b1))
}
