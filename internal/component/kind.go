package component

// Group — группа сущностей; порядок групп задаёт порядок обновления.
type Group int

const (
	GroupPlayer Group = iota
	GroupEnemies
	GroupProjectiles
	GroupBossProjectiles
	GroupPowerUps
	GroupExplosions
	GroupStructures
	GroupDrones
	GroupCount
)

// Kind — разновидность сущности.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemyUnit
	KindAnimatedEnemy
	KindBoss
	KindProjectile
	KindBossProjectile
	KindPowerUp
	KindShieldPowerUp
	KindExplosion
	KindFortress
	KindVillage
	KindPoster
	KindDrone
)

var kindNames = [...]string{
	KindPlayer:         "player",
	KindEnemyUnit:      "enemy_unit",
	KindAnimatedEnemy:  "animated_enemy",
	KindBoss:           "boss",
	KindProjectile:     "projectile",
	KindBossProjectile: "boss_projectile",
	KindPowerUp:        "powerup",
	KindShieldPowerUp:  "shield_powerup",
	KindExplosion:      "explosion",
	KindFortress:       "fortress",
	KindVillage:        "village",
	KindPoster:         "poster",
	KindDrone:          "drone",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// KindFromString разбирает имя сооружения или сущности из данных уровня.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsEnemy — сущность из группы врагов.
func (k Kind) IsEnemy() bool {
	return k == KindEnemyUnit || k == KindAnimatedEnemy || k == KindBoss
}
