// internal/defs/types.go
package defs

import "fmt"

// EnemyKind enumerates the closed set of enemy archetypes.
type EnemyKind int

const (
	EnemyDemon EnemyKind = iota
	EnemyImp
	EnemyBrute

	enemyKindCount
)

// EnemyKindCount is the number of enemy archetypes.
const EnemyKindCount = int(enemyKindCount)

// String returns the stable identifier used in definition files.
func (k EnemyKind) String() string {
	switch k {
	case EnemyDemon:
		return "demon"
	case EnemyImp:
		return "imp"
	case EnemyBrute:
		return "brute"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// ParseEnemyKind maps a definition-file identifier onto its enum value.
func ParseEnemyKind(id string) (EnemyKind, error) {
	switch id {
	case "demon":
		return EnemyDemon, nil
	case "imp":
		return EnemyImp, nil
	case "brute":
		return EnemyBrute, nil
	}
	return 0, fmt.Errorf("unknown enemy kind %q", id)
}

// PowerUpKind enumerates the closed set of power-up types.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpSpeed
	PowerUpDamage
	PowerUpMagnet

	powerUpKindCount
)

// PowerUpKindCount is the number of power-up types.
const PowerUpKindCount = int(powerUpKindCount)

// String returns the power-up identifier.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSpeed:
		return "speed"
	case PowerUpDamage:
		return "damage"
	case PowerUpMagnet:
		return "magnet"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// UpgradeKind enumerates the closed catalog offered by the level-up menu.
type UpgradeKind int

const (
	UpgradeBiggerBullet UpgradeKind = iota
	UpgradeFasterBullet
	UpgradeExtraBullet
	UpgradeShorterCooldown
	UpgradeIncreasedDamage
	UpgradeBulletPierce

	upgradeKindCount
)

// UpgradeKindCount is the size of the upgrade catalog.
const UpgradeKindCount = int(upgradeKindCount)

// String returns the upgrade identifier.
func (k UpgradeKind) String() string {
	switch k {
	case UpgradeBiggerBullet:
		return "bigger_bullet"
	case UpgradeFasterBullet:
		return "faster_bullet"
	case UpgradeExtraBullet:
		return "extra_bullet"
	case UpgradeShorterCooldown:
		return "shorter_cooldown"
	case UpgradeIncreasedDamage:
		return "increased_damage"
	case UpgradeBulletPierce:
		return "bullet_pierce"
	default:
		return fmt.Sprintf("UpgradeKind(%d)", int(k))
	}
}
