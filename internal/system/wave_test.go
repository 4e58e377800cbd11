package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
)

// useSingleEnemyLibrary подменяет библиотеку врагов одним типом, чтобы
// спавн был полностью детерминирован.
func useSingleEnemyLibrary(t *testing.T, def defs.EnemyDefinition) {
	t.Helper()
	old := defs.EnemyLibrary
	defs.EnemyLibrary = map[string]defs.EnemyDefinition{def.ID: def}
	t.Cleanup(func() { defs.EnemyLibrary = old })
}

func basicGrunt() defs.EnemyDefinition {
	return defs.EnemyDefinition{
		ID: "GRUNT", Health: 30, Speed: 80,
		Bounty: 5, Radius: 10, SpawnCost: 2,
		IntroWave: 1, RampWaves: 1,
	}
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(et event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func waveFixture(t *testing.T) (*entity.ECS, *WaveSystem, *eventRecorder) {
	t.Helper()
	ecs := entity.NewECS()
	rec := &eventRecorder{}
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.WaveStarted, rec)
	dispatcher.Subscribe(event.WaveEnded, rec)

	cfg := defs.WaveConfig{
		BaseBudget:    10,
		GrowthFactor:  1.3,
		SpawnInterval: 0.5,
		HealthScale:   0.15,
		SpeedScale:    0.08,
		BountyScale:   0.2,
	}
	sys := NewWaveSystem(ecs, cfg, utils.NewPRNGService(7), dispatcher)
	return ecs, sys, rec
}

func testWaypoints() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}}
}

func TestWaveSystem_StartWave(t *testing.T) {
	_, sys, rec := waveFixture(t)

	wave := sys.StartWave(1, testWaypoints())
	require.NotNil(t, wave)
	assert.Equal(t, 1, wave.Number)
	assert.InDelta(t, 10.0, wave.Budget, 1e-9)
	assert.Equal(t, 1, rec.count(event.WaveStarted))

	wave3 := sys.StartWave(3, testWaypoints())
	// 10 * 1.3^2
	assert.InDelta(t, 16.9, wave3.Budget, 1e-9)
}

func TestWaveSystem_StartWave_ShortPath(t *testing.T) {
	_, sys, _ := waveFixture(t)

	assert.Nil(t, sys.StartWave(1, nil))
	assert.Nil(t, sys.StartWave(1, []geom.Point{{X: 0, Y: 0}}))
}

func TestWaveSystem_SpendsExactBudget(t *testing.T) {
	useSingleEnemyLibrary(t, basicGrunt())
	ecs, sys, _ := waveFixture(t)

	wave := sys.StartWave(1, testWaypoints())
	for i := 0; i < 100; i++ {
		sys.Update(0.5, wave)
	}

	// Бюджет 10, стоимость 2: ровно пять врагов, перерасхода нет.
	assert.True(t, wave.AllBudgetSpent)
	assert.InDelta(t, 10.0, wave.Spent, 1e-9)
	assert.LessOrEqual(t, wave.Spent, wave.Budget)
	assert.Equal(t, 5, sys.ActiveEnemies())
	assert.Len(t, ecs.Enemies, 5)
}

func TestWaveSystem_WaveEndsWhenEnemiesGone(t *testing.T) {
	useSingleEnemyLibrary(t, basicGrunt())
	ecs, sys, rec := waveFixture(t)

	wave := sys.StartWave(1, testWaypoints())
	for i := 0; i < 100; i++ {
		sys.Update(0.5, wave)
	}
	require.True(t, wave.AllBudgetSpent)
	require.Equal(t, 0, rec.count(event.WaveEnded), "enemies still alive")

	for _, id := range entity.SortedIDs(ecs.Enemies) {
		sys.Free(id)
	}
	sys.Update(0.5, wave)

	assert.Equal(t, 1, rec.count(event.WaveEnded))

	// Событие не дублируется.
	sys.Update(0.5, wave)
	assert.Equal(t, 1, rec.count(event.WaveEnded))
}

func TestWaveSystem_ScalesEnemyStats(t *testing.T) {
	useSingleEnemyLibrary(t, basicGrunt())
	ecs, sys, _ := waveFixture(t)

	wave := sys.StartWave(3, testWaypoints())
	for i := 0; i < 3 && len(ecs.Enemies) == 0; i++ {
		sys.Update(0.5, wave)
	}
	require.NotEmpty(t, ecs.Enemies)

	id := entity.SortedIDs(ecs.Enemies)[0]
	enemy := ecs.Enemies[id]
	// Волна 3: здоровье *1.3, скорость *1.16, награда *1.4.
	assert.InDelta(t, 39.0, enemy.Health, 1e-9)
	assert.InDelta(t, 39.0, enemy.MaxHealth, 1e-9)
	assert.InDelta(t, 92.8, ecs.Velocities[id].Speed, 1e-9)
	assert.Equal(t, 7, enemy.Bounty)
}

func TestWaveSystem_IntroWaveGate(t *testing.T) {
	late := basicGrunt()
	late.ID = "LATE"
	late.IntroWave = 5
	useSingleEnemyLibrary(t, late)
	ecs, sys, _ := waveFixture(t)

	// До волны знакомства тип недоступен; бюджет закрывается сразу.
	wave := sys.StartWave(4, testWaypoints())
	sys.Update(0.5, wave)
	assert.True(t, wave.AllBudgetSpent)
	assert.Empty(t, ecs.Enemies)

	// Начиная с IntroWave тип уже допущен (рампа в одну волну).
	late.RampWaves = 1
	defs.EnemyLibrary["LATE"] = late
	wave = sys.StartWave(5, testWaypoints())
	for i := 0; i < 100; i++ {
		sys.Update(0.5, wave)
	}
	assert.NotEmpty(t, ecs.Enemies)
}

func TestWaveSystem_SpawnsAtPathStart(t *testing.T) {
	useSingleEnemyLibrary(t, basicGrunt())
	ecs, sys, _ := waveFixture(t)

	wave := sys.StartWave(1, testWaypoints())
	sys.Update(0.5, wave)
	require.NotEmpty(t, ecs.Enemies)

	id := entity.SortedIDs(ecs.Enemies)[0]
	assert.Equal(t, 0.0, ecs.Positions[id].X)
	assert.Equal(t, 0.0, ecs.Positions[id].Y)
	assert.NotNil(t, ecs.PathFollowers[id])
	assert.NotNil(t, ecs.StatusEffects[id])
}

func TestWaveSystem_FreeRecyclesBundle(t *testing.T) {
	useSingleEnemyLibrary(t, basicGrunt())
	ecs, sys, _ := waveFixture(t)

	wave := sys.StartWave(1, testWaypoints())
	sys.Update(0.5, wave)
	require.NotEmpty(t, ecs.Enemies)
	id := entity.SortedIDs(ecs.Enemies)[0]

	sys.Free(id)

	assert.Equal(t, 1, sys.PoolFreeCount())
	assert.NotContains(t, ecs.Enemies, id)
	assert.NotContains(t, ecs.PathFollowers, id)
	assert.NotContains(t, ecs.StatusEffects, id)
	assert.Equal(t, 0, sys.ActiveEnemies())
}
