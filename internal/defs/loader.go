// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/enemies.json
var embeddedDefs embed.FS

// loadEnemyDefinitions parses the embedded enemy definition file into a
// library keyed by EnemyKind. Unknown or missing kinds are errors: the enum
// and the data file must stay in lockstep.
func loadEnemyDefinitions() (map[EnemyKind]EnemyDefinition, error) {
	raw, err := embeddedDefs.ReadFile("data/enemies.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(raw, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[EnemyKind]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		kind, err := ParseEnemyKind(def.ID)
		if err != nil {
			return nil, err
		}
		library[kind] = def
	}
	if len(library) != EnemyKindCount {
		return nil, fmt.Errorf("enemy definitions incomplete: got %d of %d kinds", len(library), EnemyKindCount)
	}
	return library, nil
}

func mustLoadEnemyDefinitions() map[EnemyKind]EnemyDefinition {
	library, err := loadEnemyDefinitions()
	if err != nil {
		panic(err)
	}
	return library
}
