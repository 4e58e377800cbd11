// internal/entity/pool.go
package entity

// Pool — пул переиспользуемых объектов. Снижает аллокации на горячих
// путях спавна врагов и снарядов. Объект находится либо в живой
// коллекции ECS, либо в пуле — никогда в обоих местах сразу: владелец
// обязан сначала удалить компоненты из ECS и только затем вызвать Put.
type Pool[T any] struct {
	free  []*T
	reset func(*T)
}

// NewPool создаёт пул; reset вызывается на объекте при возврате в пул
// и обязан привести его в состояние "как новый".
func NewPool[T any](reset func(*T)) *Pool[T] {
	return &Pool[T]{reset: reset}
}

// Get возвращает объект из пула или аллоцирует новый.
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		obj := p.free[n-1]
		p.free = p.free[:n-1]
		return obj
	}
	return new(T)
}

// Put возвращает объект в пул.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.free = append(p.free, obj)
}

// FreeCount возвращает число объектов, ожидающих переиспользования.
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}
