// internal/defs/enemies.go
package defs

import "image/color"

// Visuals holds the drawing parameters for a procedurally generated sprite
// set: base color and the scale applied to the reference enemy size.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Scale float64    `json:"scale"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
// Health is the base value before the difficulty multiplier; speed is in
// pixels per tick.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  float64 `json:"health"`
	Speed   float64 `json:"speed"`
	Visuals Visuals `json:"visuals"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
// Populated from the embedded definition file at package init.
var EnemyLibrary = mustLoadEnemyDefinitions()
