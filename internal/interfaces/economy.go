// internal/interfaces/economy.go
package interfaces

// Economy — внешний кошелёк игрока. Ядро симуляции денег не хранит:
// оно только начисляет награды и спрашивает разрешение на траты.
type Economy interface {
	CanAfford(cost int) bool
	Spend(cost int) bool
	Earn(amount int)
}
