// internal/app/wallet.go
package app

// Wallet — простейшая реализация Economy для одиночной партии.
// Ядро симуляции видит её только через интерфейс.
type Wallet struct {
	gold int
}

func NewWallet(startingGold int) *Wallet {
	return &Wallet{gold: startingGold}
}

func (w *Wallet) CanAfford(cost int) bool {
	return cost <= w.gold
}

func (w *Wallet) Spend(cost int) bool {
	if cost > w.gold {
		return false
	}
	w.gold -= cost
	return true
}

func (w *Wallet) Earn(amount int) {
	w.gold += amount
}

func (w *Wallet) Gold() int {
	return w.gold
}
