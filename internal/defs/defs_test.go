// internal/defs/defs_test.go
package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyLibraryComplete(t *testing.T) {
	require.Len(t, EnemyLibrary, EnemyKindCount)

	for kind := EnemyKind(0); int(kind) < EnemyKindCount; kind++ {
		def, ok := EnemyLibrary[kind]
		require.True(t, ok, "missing definition for %s", kind)
		assert.Equal(t, kind.String(), def.ID)
		assert.Greater(t, def.Health, 0.0)
		assert.Greater(t, def.Speed, 0.0)
		assert.Greater(t, def.Visuals.Scale, 0.0)
	}
}

func TestParseEnemyKind(t *testing.T) {
	for kind := EnemyKind(0); int(kind) < EnemyKindCount; kind++ {
		parsed, err := ParseEnemyKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseEnemyKind("dragon")
	assert.Error(t, err)
}

func TestCatalogIndexesMatchKinds(t *testing.T) {
	for i, def := range UpgradeCatalog {
		assert.Equal(t, UpgradeKind(i), def.Kind)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
	}
	for i, def := range PowerUpTable {
		assert.Equal(t, PowerUpKind(i), def.Kind)
		assert.NotEmpty(t, def.Name)
	}
}
