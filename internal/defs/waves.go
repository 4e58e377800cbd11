// internal/defs/waves.go
package defs

// WaveConfig управляет бюджетом спавна и масштабированием волн.
//
// Бюджет волны n равен BaseBudget * GrowthFactor^(n-1); спавн
// останавливается, когда остатка не хватает ни на один доступный тип.
// Параметры *Scale задают глобальное умножение характеристик врага
// на волне n: value * (1 + Scale*(n-1)).
type WaveConfig struct {
	BaseBudget    float64 `json:"base_budget"`
	GrowthFactor  float64 `json:"growth_factor"`
	SpawnInterval float64 `json:"spawn_interval"` // секунд между попытками спавна
	HealthScale   float64 `json:"health_scale"`
	SpeedScale    float64 `json:"speed_scale"`
	BountyScale   float64 `json:"bounty_scale"`
}

// DefaultWaveConfig returns the tuning the game ships with.
func DefaultWaveConfig() WaveConfig {
	return WaveConfig{
		BaseBudget:    10,
		GrowthFactor:  1.3,
		SpawnInterval: 0.8,
		HealthScale:   0.15,
		SpeedScale:    0.08,
		BountyScale:   0.2,
	}
}
