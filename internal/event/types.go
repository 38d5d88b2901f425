// internal/event/types.go
package event

const (
	EnemyHit         EventType = "EnemyHit"         // Попадание по врагу с запасом здоровья
	EnemyKilled      EventType = "EnemyKilled"      // Обычный враг уничтожен
	BossSpawned      EventType = "BossSpawned"      // Появился босс
	BossKilled       EventType = "BossKilled"       // Босс уничтожен
	PowerUpCollected EventType = "PowerUpCollected" // Бонус подобран
	ShieldAbsorbed   EventType = "ShieldAbsorbed"   // Щит поглотил удар
	PlayerHit        EventType = "PlayerHit"        // Игрок потерял жизнь
	LevelUp          EventType = "LevelUp"          // Новый уровень
	GameOver         EventType = "GameOver"         // Жизни закончились
)

// AllTypes — все типы игровых событий.
var AllTypes = []EventType{
	EnemyHit, EnemyKilled, BossSpawned, BossKilled, PowerUpCollected,
	ShieldAbsorbed, PlayerHit, LevelUp, GameOver,
}
