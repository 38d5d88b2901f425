// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Pixel War"
	MaxDeltaTime = 0.06 // сек, защита от рывков после паузы окна

	// Игрок
	PlayerWidth      = 50
	PlayerHeight     = 50
	PlayerSpeed      = 5.0 // px/tick
	PlayerLives      = 3
	InvulnerableMs   = 2000.0
	ShieldDurationMs = 5000.0

	// Враги
	EnemySize              = 50
	EnemyUnitBaseSpeed     = 3.0
	AnimatedEnemyBaseSpeed = 2.0
	EnemyUnitHealth        = 1
	AnimatedEnemyHealth    = 2
	InitialEnemyX          = 200.0
	InitialEnemyY          = 150.0

	BossSize        = 80
	BossBaseSpeed   = 2.0
	BossAttackTicks = 180
	BossMinLevel    = 5
	BossBarHeight   = 5
	BossBarOffset   = 10

	// Снаряды
	ProjectileWidth      = 10
	ProjectileHeight     = 20
	ProjectileSpeed      = 10.0
	BossProjectileSize   = 15
	BossProjectileSpeed  = 7.0
	ProjectileSpawnLift  = 5.0
	PowerUpSize          = 30
	PowerUpSpeed         = 2.0
	PowerUpIntervalMs    = 10000.0
	PowerUpSpawnY        = -15.0
	ShieldPowerUpChance  = 0.5
	ExplosionSize        = 50
	ExplosionFrames      = 20
	ExplosionSheetFrames = 8
	AnimatedEnemyChance  = 0.5
	ScorePerTick         = 1
	ScorePerHit          = 100
	ScorePerKill         = 500
	ScorePerLevel        = 1000
	StartLevel           = 1
	UpgradeSpeedStep     = 1.0
	UpgradeProjStep      = 2.0
	UpgradeShieldMs      = 100.0

	// Дроны
	DroneSize        = 40
	DroneSpeed       = 3.0
	DroneAmplitude   = 20.0
	DroneFrequency   = 0.05
	DroneSpawnRate   = 0.01
	MaxDrones        = 12
	DroneSpawnMinY   = 50
	DroneSpawnMaxY   = 200
	ParallaxFarRate  = 0.5
	ParallaxNearRate = 1.0

	// Сцены
	FadeDurationMs          = 500.0
	CutsceneCharDelayMs     = 40.0
	CutsceneFadeStep        = 5
	DialogueCharDelayMs     = 30.0
	PutinCutsceneDurationMs = 3000.0
	JournalScrollStep       = 10
	VolumeStep              = 0.1
	SkillMaxLevel           = 5
	SkillCost               = 1

	DefaultFontSize = 13
	LineHeight      = 18
)

// Границы случайного спавна (включительно).
const (
	LevelEnemyMinX = 50
	LevelEnemyMaxX = 750
	LevelEnemyMinY = 50
	LevelEnemyMaxY = 550
	BossMinX       = 100
	BossMaxX       = 700
	BossMinY       = 100
	BossMaxY       = 300
	PowerUpMinX    = 30
	PowerUpMaxX    = 770
)

// Файлы рядом с исполняемым файлом.
const (
	SettingsFile  = "settings.yaml"
	HighScoreFile = "highscore.txt"
	SaveFile      = "savegame.dat"
	IntroCutscene = "cutscene_intro"
	QuestDataFile = "quest_data"
	LevelFile     = "level1"
	BriefingFile  = "dialogue_briefing"
	QuestMaster   = "quest_master"
	Elder         = "dialogue_elder"
	PutinImage    = "images/putin.png"
)

var (
	BackgroundColor = color.RGBA{10, 12, 28, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 170, 255}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 150}
	ShieldColor     = color.RGBA{80, 180, 255, 255}
	BossBarColor    = color.RGBA{220, 40, 40, 255}
	BossBarBack     = color.RGBA{60, 20, 20, 255}
	DebugTextColor  = color.RGBA{0, 255, 0, 255}
)
