// internal/event/event.go
package event

// EventType различает события симуляции: жизненный цикл волны,
// судьбу врагов, постройку башен. Набор типов — в types.go.
type EventType string

// Event несёт тип и полезную нагрузку. Что лежит в Data, фиксировано
// за каждым типом: номер волны, EntityID врага, клетка башни,
// FinalScore для GameOver.
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан. Game и тестовые
// рекордеры реализуют его напрямую.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронная шина: Dispatch вызывает слушателей прямо
// в кадре симуляции, очереди нет.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет слушателя на один тип события. Повторная
// подписка даст повторную доставку.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает все вхождения слушателя для данного типа.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	subs := d.listeners[eventType]
	kept := subs[:0]
	for _, l := range subs {
		if l != listener {
			kept = append(kept, l)
		}
	}
	d.listeners[eventType] = kept
}

// Dispatch доставляет событие всем подписчикам его типа. Рассылаем по
// снимку списка: слушатель может отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]Listener, len(subs))
	copy(snapshot, subs)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
