// internal/component/game_state.go
package component

// GamePhase — фаза игры: строительство между волнами или бой.
type GamePhase int

const (
	BuildPhase GamePhase = iota
	WavePhase
)
