package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatcher_SubscribeAndDispatch(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(WaveStarted, l)

	d.Dispatch(Event{Type: WaveStarted, Data: 3})
	d.Dispatch(Event{Type: WaveEnded, Data: 3}) // чужое событие не доходит

	assert.Len(t, l.got, 1)
	assert.Equal(t, 3, l.got[0].Data)
}

func TestDispatcher_MultipleListeners(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)

	d.Dispatch(Event{Type: EnemyKilled})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(TowerPlaced, l)
	d.Unsubscribe(TowerPlaced, l)

	d.Dispatch(Event{Type: TowerPlaced})

	assert.Empty(t, l.got)
}

func TestDispatcher_UnsubscribeRemovesDuplicates(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(TowerSold, l)
	d.Subscribe(TowerSold, l)
	d.Unsubscribe(TowerSold, l)

	d.Dispatch(Event{Type: TowerSold})

	assert.Empty(t, l.got)
}

// selfRemovingListener отписывается прямо из обработчика — так делает
// одноразовый слушатель.
type selfRemovingListener struct {
	d     *Dispatcher
	count int
}

func (l *selfRemovingListener) OnEvent(e Event) {
	l.count++
	l.d.Unsubscribe(e.Type, l)
}

func TestDispatcher_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	once := &selfRemovingListener{d: d}
	after := &countingListener{}
	d.Subscribe(WaveEnded, once)
	d.Subscribe(WaveEnded, after)

	d.Dispatch(Event{Type: WaveEnded})
	d.Dispatch(Event{Type: WaveEnded})

	assert.Equal(t, 1, once.count)
	assert.Len(t, after.got, 2) // сосед по списку не пострадал
}

func TestDispatcher_DispatchWithoutListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: GameOver})
	})
}
