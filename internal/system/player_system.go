// internal/system/player_system.go
package system

import (
	"pixel-war/internal/config"
	"pixel-war/internal/entity"
	"pixel-war/internal/types"
	"pixel-war/internal/utils"
)

// PlayerSystem двигает корабль игрока в пределах поля.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// Move смещает игрока на dirX/dirY шагов скорости (-1, 0, 1).
func (s *PlayerSystem) Move(id types.EntityID, dirX, dirY int) {
	pos, box, pilot := s.ecs.Positions[id], s.ecs.Hitboxes[id], s.ecs.Pilots[id]
	if pos == nil || box == nil || pilot == nil {
		return
	}
	pos.X = utils.Clamp(pos.X+float64(dirX)*pilot.Speed, box.W/2, config.ScreenWidth-box.W/2)
	pos.Y = utils.Clamp(pos.Y+float64(dirY)*pilot.Speed, box.H/2, config.ScreenHeight-box.H/2)
}

// Recenter возвращает игрока в центр поля.
func (s *PlayerSystem) Recenter(id types.EntityID) {
	if pos := s.ecs.Positions[id]; pos != nil {
		pos.X, pos.Y = config.ScreenWidth/2, config.ScreenHeight/2
	}
}
