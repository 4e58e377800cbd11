// internal/app/game.go
package app

import (
	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/interfaces"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/gridmap"
)

// FrameReport — итог одного тика для внешних слоёв (UI, статистика).
// Само ядро денег и счёта не хранит: награды уходят в Economy,
// остальное — в этот отчёт и события.
type FrameReport struct {
	Kills        int
	Leaked       int
	BountyEarned int
	WaveEnded    bool
	GameOver     bool
}

// Game holds the main game state and logic.
//
// Игра владеет всеми живыми коллекциями через ECS и порядком тика:
// волны -> эффекты -> движение -> реап врагов -> башни -> снаряды ->
// реап снарядов. Жадный реап врагов до стрельбы гарантирует, что
// умерший от горения враг не засчитается ещё и как прорвавшийся.
type Game struct {
	Map       *gridmap.Map
	ECS       *entity.ECS
	Waypoints []geom.Point // маршрут текущей волны, для чтения

	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	SpeedMultiplier float64

	economy    interfaces.Economy
	towerPool  *entity.Pool[entity.TowerBundle]
	towers     map[types.EntityID]*entity.TowerBundle
	waveNumber int // номер следующей волны
	lives      int
	kills      int
	gameTime   float64
	isPaused   bool
	gameOver   bool
	waveJustEnded bool
}

// NewGame initializes a new game instance.
func NewGame(m *gridmap.Map, economy interfaces.Economy, waveCfg defs.WaveConfig, seed int64) *Game {
	if m == nil {
		panic("map cannot be nil")
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Map:                m,
		ECS:                ecs,
		MovementSystem:     system.NewMovementSystem(ecs),
		StatusEffectSystem: system.NewStatusEffectSystem(ecs),
		CombatSystem:       system.NewCombatSystem(ecs, rng),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		EventDispatcher:    dispatcher,
		Rng:                rng,
		SpeedMultiplier:    1.0,
		economy:            economy,
		towerPool:          entity.NewPool(entity.ResetTowerBundle),
		towers:             make(map[types.EntityID]*entity.TowerBundle),
		waveNumber:         1,
		lives:              config.BaseLives,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, waveCfg, rng, dispatcher)

	dispatcher.Subscribe(event.WaveEnded, g)
	return g
}

// OnEvent — Game слушает конец волны, чтобы вернуть фазу строительства.
func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.WaveEnded {
		g.ECS.Phase = component.BuildPhase
		g.ECS.Wave = nil
		g.waveJustEnded = true
	}
}

// StartNextWave пересчитывает маршрут по текущей застройке и запускает
// следующую волну. Возвращает false, если маршрута нет — такое состояние
// блокируется ещё на этапе постройки, но проверка остаётся.
func (g *Game) StartNextWave() bool {
	if g.ECS.Phase == component.WavePhase || g.gameOver {
		return false
	}
	waypoints := g.Map.BuildWaypoints()
	if waypoints == nil {
		return false
	}
	wave := g.WaveSystem.StartWave(g.waveNumber, waypoints)
	if wave == nil {
		return false
	}
	g.Waypoints = waypoints
	g.ECS.Wave = wave
	g.ECS.Phase = component.WavePhase
	g.waveNumber++
	return true
}

// Update выполняет один тик симуляции и возвращает его итог.
func (g *Game) Update(deltaTime float64) FrameReport {
	var report FrameReport
	if g.isPaused || g.gameOver {
		return report
	}

	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	if g.ECS.Phase == component.WavePhase {
		g.WaveSystem.Update(dt, g.ECS.Wave)
		g.StatusEffectSystem.Update(dt)
		g.MovementSystem.Update(dt)
		g.reapEnemies(&report)

		for _, spawn := range g.CombatSystem.Update(dt) {
			g.ProjectileSystem.Spawn(spawn)
		}
		g.ProjectileSystem.Update(dt)
		g.reapProjectiles()
	}

	if g.waveJustEnded {
		g.waveJustEnded = false
		report.WaveEnded = true
	}
	report.GameOver = g.gameOver
	return report
}

// reapEnemies убирает мёртвых и прорвавшихся врагов. Смерть проверяется
// раньше конца пути: сгоревший на последнем сегменте враг — убийство с
// наградой, а не потерянная жизнь.
func (g *Game) reapEnemies(report *FrameReport) {
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		switch {
		case enemy.Dead:
			g.economy.Earn(enemy.Bounty)
			g.kills++
			report.Kills++
			report.BountyEarned += enemy.Bounty
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
			g.WaveSystem.Free(id)
		case enemy.ReachedEnd:
			g.lives--
			report.Leaked++
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
			g.WaveSystem.Free(id)
			if g.lives <= 0 && !g.gameOver {
				g.gameOver = true
				g.EventDispatcher.Dispatch(event.Event{
					Type: event.GameOver,
					Data: event.FinalScore{WavesSurvived: g.waveNumber - 2, Kills: g.kills},
				})
			}
		}
	}
}

func (g *Game) reapProjectiles() {
	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		if g.ECS.Projectiles[id].IsDead {
			g.ProjectileSystem.Free(id)
		}
	}
}

// --- Public Accessors & Mutators ---

func (g *Game) CurrentWaveNumber() int {
	if g.ECS.Wave != nil {
		return g.ECS.Wave.Number
	}
	return g.waveNumber - 1
}

func (g *Game) Lives() int {
	return g.lives
}

func (g *Game) Kills() int {
	return g.kills
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.Phase
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
