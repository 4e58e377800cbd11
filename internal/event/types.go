// internal/event/types.go
package event

const (
	WaveStarted EventType = "WaveStarted" // Волна началась
	WaveEnded   EventType = "WaveEnded"   // Волна закончилась
	EnemyKilled EventType = "EnemyKilled" // Враг уничтожен
	EnemyLeaked EventType = "EnemyLeaked" // Враг дошёл до выхода
	TowerPlaced EventType = "TowerPlaced" // Башня построена
	TowerSold   EventType = "TowerSold"
	GameOver    EventType = "GameOver" // Жизни кончились; Data — FinalScore
)

// FinalScore — итог партии, передаётся с событием GameOver.
type FinalScore struct {
	WavesSurvived int
	Kills         int
}
