// internal/system/spawn.go
package system

import (
	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/entity"
	"pixel-war/internal/types"
	"pixel-war/internal/utils"
)

// StructureSpec — декоративное сооружение из данных уровня.
type StructureSpec struct {
	Kind component.Kind
	X, Y float64
}

// DefaultStructures — крепость, деревня и плакат.
var DefaultStructures = []StructureSpec{
	{Kind: component.KindFortress, X: 400, Y: 500},
	{Kind: component.KindVillage, X: 150, Y: 550},
	{Kind: component.KindPoster, X: 650, Y: 550},
}

var structureSizes = map[component.Kind][2]float64{
	component.KindFortress: {200, 150},
	component.KindVillage:  {150, 100},
	component.KindPoster:   {100, 150},
}

// SpawnSystem создаёт сущности; весь рандом идёт через PRNGService.
type SpawnSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng}
}

// EnemySpeed — скорость врага на уровне: base + (level - 1).
func EnemySpeed(base float64, level int) float64 {
	return base + float64(level-1)
}

// SpawnPlayer создаёт корабль игрока в центре поля.
func (s *SpawnSystem) SpawnPlayer(speed float64) types.EntityID {
	id := s.ecs.NewEntity(component.GroupPlayer, component.KindPlayer,
		config.ScreenWidth/2, config.ScreenHeight/2, config.PlayerWidth, config.PlayerHeight)
	s.ecs.Pilots[id] = &component.Pilot{Speed: speed}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: "images/player.png", Color: colorPlayer}
	return id
}

// SpawnInitialEnemy — стартовый враг в (200, 150).
func (s *SpawnSystem) SpawnInitialEnemy(level int) types.EntityID {
	return s.spawnEnemy(config.InitialEnemyX, config.InitialEnemyY, level)
}

// SpawnLevelEnemy — новый враг при повышении уровня в случайной точке поля.
func (s *SpawnSystem) SpawnLevelEnemy(level int) types.EntityID {
	x := s.rng.Range(config.LevelEnemyMinX, config.LevelEnemyMaxX)
	y := s.rng.Range(config.LevelEnemyMinY, config.LevelEnemyMaxY)
	return s.spawnEnemy(float64(x), float64(y), level)
}

func (s *SpawnSystem) spawnEnemy(x, y float64, level int) types.EntityID {
	kind, base, health := component.KindEnemyUnit, config.EnemyUnitBaseSpeed, config.EnemyUnitHealth
	sprite := "images/enemy_unit.png"
	if s.rng.Chance(config.AnimatedEnemyChance) {
		kind, base, health = component.KindAnimatedEnemy, config.AnimatedEnemyBaseSpeed, config.AnimatedEnemyHealth
		sprite = "images/enemy_animated.png"
	}
	id := s.ecs.NewEntity(component.GroupEnemies, kind, x, y, config.EnemySize, config.EnemySize)
	s.ecs.Patrols[id] = &component.Patrol{BaseSpeed: base, Speed: EnemySpeed(base, level), Direction: 1}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Color: colorEnemy}
	return id
}

// SpawnBoss создаёт босса со здоровьем health в случайной точке верхней части поля.
func (s *SpawnSystem) SpawnBoss(level, health int) types.EntityID {
	x := s.rng.Range(config.BossMinX, config.BossMaxX)
	y := s.rng.Range(config.BossMinY, config.BossMaxY)
	id := s.ecs.NewEntity(component.GroupEnemies, component.KindBoss, float64(x), float64(y), config.BossSize, config.BossSize)
	s.ecs.Patrols[id] = &component.Patrol{BaseSpeed: config.BossBaseSpeed, Speed: EnemySpeed(config.BossBaseSpeed, level), Direction: 1}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.BossAttacks[id] = &component.BossAttack{Interval: config.BossAttackTicks}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: "images/boss.png", Color: colorBoss}
	return id
}

// SpawnProjectile — снаряд игрока, летит вверх.
func (s *SpawnSystem) SpawnProjectile(x, y, speed float64) types.EntityID {
	id := s.ecs.NewEntity(component.GroupProjectiles, component.KindProjectile, x, y, config.ProjectileWidth, config.ProjectileHeight)
	s.ecs.Velocities[id] = &component.Velocity{DY: -speed}
	s.ecs.Renderables[id] = &component.Renderable{Color: colorProjectile}
	return id
}

// SpawnBossProjectile — снаряд босса, летит вниз.
func (s *SpawnSystem) SpawnBossProjectile(x, y float64) types.EntityID {
	id := s.ecs.NewEntity(component.GroupBossProjectiles, component.KindBossProjectile, x, y, config.BossProjectileSize, config.BossProjectileSize)
	s.ecs.Velocities[id] = &component.Velocity{DY: config.BossProjectileSpeed}
	s.ecs.Renderables[id] = &component.Renderable{Color: colorBossProjectile}
	return id
}

// SpawnPowerUp — бонус у верхнего края; щит или жизнь 50/50.
func (s *SpawnSystem) SpawnPowerUp() types.EntityID {
	kind, sprite, clr := component.KindPowerUp, "images/powerup.png", colorPowerUp
	if s.rng.Chance(config.ShieldPowerUpChance) {
		kind, sprite, clr = component.KindShieldPowerUp, "images/shield_powerup.png", colorShield
	}
	x := s.rng.Range(config.PowerUpMinX, config.PowerUpMaxX)
	id := s.ecs.NewEntity(component.GroupPowerUps, kind, float64(x), config.PowerUpSpawnY, config.PowerUpSize, config.PowerUpSize)
	s.ecs.Velocities[id] = &component.Velocity{DY: config.PowerUpSpeed}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Color: clr}
	return id
}

// SpawnExplosion — взрыв на 20 кадров.
func (s *SpawnSystem) SpawnExplosion(x, y float64) types.EntityID {
	id := s.ecs.NewEntity(component.GroupExplosions, component.KindExplosion, x, y, config.ExplosionSize, config.ExplosionSize)
	s.ecs.Lifetimes[id] = &component.Lifetime{MaxFrames: config.ExplosionFrames}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: "images/explosion.png", Frames: config.ExplosionSheetFrames, Color: colorExplosion}
	return id
}

// MaybeSpawnDrone — с вероятностью 1% за тик выпускает дрона у левого края.
func (s *SpawnSystem) MaybeSpawnDrone() (types.EntityID, bool) {
	if !s.rng.Chance(config.DroneSpawnRate) || s.ecs.Count(component.GroupDrones) >= config.MaxDrones {
		return 0, false
	}
	y := float64(s.rng.Range(config.DroneSpawnMinY, config.DroneSpawnMaxY))
	id := s.ecs.NewEntity(component.GroupDrones, component.KindDrone, 0, y, config.DroneSize, config.DroneSize)
	s.ecs.Waves[id] = &component.Wave{
		Speed:     config.DroneSpeed,
		BaseY:     y,
		Amplitude: config.DroneAmplitude,
		Frequency: config.DroneFrequency,
	}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: "images/drone.png", Color: colorDrone}
	return id, true
}

// SpawnStructures ставит декоративные сооружения. Неизвестные виды пропускаются.
func (s *SpawnSystem) SpawnStructures(specs []StructureSpec) int {
	n := 0
	for _, spec := range specs {
		size, ok := structureSizes[spec.Kind]
		if !ok {
			continue
		}
		id := s.ecs.NewEntity(component.GroupStructures, spec.Kind, spec.X, spec.Y, size[0], size[1])
		s.ecs.Renderables[id] = &component.Renderable{Sprite: "images/" + spec.Kind.String() + ".png", Color: colorStructure}
		n++
	}
	return n
}

// Reposition переносит сущность в случайную точку поля.
func (s *SpawnSystem) Reposition(id types.EntityID) {
	if pos := s.ecs.Positions[id]; pos != nil {
		pos.X = float64(s.rng.Range(config.LevelEnemyMinX, config.LevelEnemyMaxX))
		pos.Y = float64(s.rng.Range(config.LevelEnemyMinY, config.LevelEnemyMaxY))
	}
}
