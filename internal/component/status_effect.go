// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Remaining float64 // How much time is left for the effect.
	Factor    float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// StunEffect blocks all movement while active. Damage over time still applies.
type StunEffect struct {
	Remaining float64
}

// BurnEffect deals DamagePerSecond proportionally to elapsed time.
type BurnEffect struct {
	Remaining       float64
	DamagePerSecond float64
}

// FreezeEffect — замедление до нуля; длительность учитывается отдельно
// от обычного Slow, чтобы UI и логика могли спросить "заморожен ли".
type FreezeEffect struct {
	Remaining float64
}

// StatusEffects — набор активных эффектов одной сущности.
type StatusEffects struct {
	Slow   *SlowEffect
	Stun   *StunEffect
	Burn   *BurnEffect
	Freeze *FreezeEffect
}

// Повторное наложение эффекта берёт большую из длительностей (эффект
// продлевается, но никогда не укорачивается); сила эффекта при этом
// перезаписывается последним наложением.

func (s *StatusEffects) ApplySlow(factor, duration float64) {
	if s.Slow != nil && s.Slow.Remaining > duration {
		duration = s.Slow.Remaining
	}
	s.Slow = &SlowEffect{Remaining: duration, Factor: factor}
}

func (s *StatusEffects) ApplyStun(duration float64) {
	if s.Stun != nil && s.Stun.Remaining > duration {
		duration = s.Stun.Remaining
	}
	s.Stun = &StunEffect{Remaining: duration}
}

func (s *StatusEffects) ApplyBurn(dps, duration float64) {
	if s.Burn != nil && s.Burn.Remaining > duration {
		duration = s.Burn.Remaining
	}
	s.Burn = &BurnEffect{Remaining: duration, DamagePerSecond: dps}
}

func (s *StatusEffects) ApplyFreeze(duration float64) {
	if s.Freeze != nil && s.Freeze.Remaining > duration {
		duration = s.Freeze.Remaining
	}
	s.Freeze = &FreezeEffect{Remaining: duration}
}

// SpeedMultiplier возвращает множитель скорости от замедлений.
// Заморозка полностью останавливает движение.
func (s *StatusEffects) SpeedMultiplier() float64 {
	if s.Freeze != nil {
		return 0
	}
	if s.Slow != nil {
		return s.Slow.Factor
	}
	return 1
}

// IsStunned сообщает, заблокировано ли движение оглушением.
func (s *StatusEffects) IsStunned() bool {
	return s.Stun != nil
}

// IsFrozen сообщает, активна ли заморозка.
func (s *StatusEffects) IsFrozen() bool {
	return s.Freeze != nil
}

// Clear снимает все эффекты (возврат сущности в пул).
func (s *StatusEffects) Clear() {
	s.Slow = nil
	s.Stun = nil
	s.Burn = nil
	s.Freeze = nil
}
