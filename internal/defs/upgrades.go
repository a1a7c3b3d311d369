// internal/defs/upgrades.go
package defs

// UpgradeDefinition describes one entry of the level-up catalog. The
// description is what the upgrade menu renders under the name.
type UpgradeDefinition struct {
	Kind        UpgradeKind
	Name        string
	Description string
}

// UpgradeCatalog lists every upgrade the level-up menu can offer, indexed by
// UpgradeKind.
var UpgradeCatalog = [UpgradeKindCount]UpgradeDefinition{
	UpgradeBiggerBullet:    {Kind: UpgradeBiggerBullet, Name: "Bigger Bullets", Description: "+5 bullet size"},
	UpgradeFasterBullet:    {Kind: UpgradeFasterBullet, Name: "Faster Bullets", Description: "+2 bullet speed"},
	UpgradeExtraBullet:     {Kind: UpgradeExtraBullet, Name: "Extra Bullet", Description: "+1 bullet per shot"},
	UpgradeShorterCooldown: {Kind: UpgradeShorterCooldown, Name: "Rapid Fire", Description: "-3 ticks between shots"},
	UpgradeIncreasedDamage: {Kind: UpgradeIncreasedDamage, Name: "Heavy Rounds", Description: "+1 bullet damage"},
	UpgradeBulletPierce:    {Kind: UpgradeBulletPierce, Name: "Piercing Rounds", Description: "bullets pierce one more enemy"},
}
