// internal/component/player.go
package component

// Pilot — управляемый игроком корабль.
type Pilot struct {
	Speed float64 // px/tick
}
