// internal/defs/powerups.go
package defs

import "image/color"

// PowerUpDefinition describes one power-up type and how to draw its pickup.
type PowerUpDefinition struct {
	Kind  PowerUpKind
	Name  string
	Color color.RGBA
}

// PowerUpTable lists every power-up type, indexed by PowerUpKind.
var PowerUpTable = [PowerUpKindCount]PowerUpDefinition{
	PowerUpShield: {Kind: PowerUpShield, Name: "Shield", Color: color.RGBA{60, 120, 255, 255}},
	PowerUpSpeed:  {Kind: PowerUpSpeed, Name: "Speed", Color: color.RGBA{60, 200, 90, 255}},
	PowerUpDamage: {Kind: PowerUpDamage, Name: "Damage", Color: color.RGBA{220, 60, 60, 255}},
	PowerUpMagnet: {Kind: PowerUpMagnet, Name: "Magnet", Color: color.RGBA{250, 210, 60, 255}},
}
