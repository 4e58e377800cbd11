// internal/component/wave.go
package component

// Wave — состояние текущей волны. Spent никогда не превышает Budget;
// AllBudgetSpent выставляется, когда остатка не хватает ни на один
// доступный тип врага (фаза спавна закончена, враги могут быть живы).
type Wave struct {
	Number         int
	Budget         float64
	Spent          float64
	AllBudgetSpent bool
	SpawnTimer     float64
	SpawnInterval  float64
}

// Remaining возвращает неизрасходованный бюджет волны.
func (w *Wave) Remaining() float64 {
	return w.Budget - w.Spent
}
