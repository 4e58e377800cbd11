// internal/system/wave.go
package system

import (
	"log"
	"math"
	"sort"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
)

// WaveSystem — директор волн. Каждая волна получает бюджет спавна
// BaseBudget * GrowthFactor^(n-1); пока бюджет не израсходован, система
// с шагом SpawnInterval выбирает случайный доступный тип врага и
// выпускает его на путь. Тип доступен, если его стоимость не превышает
// остатка бюджета и волна не младше его IntroWave; шанс включения в
// выбор растёт линейно от IntroWave за RampWaves волн до единицы.
//
// Волна завершается, когда бюджет потрачен и живых врагов не осталось.
type WaveSystem struct {
	ecs             *entity.ECS
	cfg             defs.WaveConfig
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher

	waypoints     []geom.Point
	pool          *entity.Pool[entity.EnemyBundle]
	bundles       map[types.EntityID]*entity.EnemyBundle
	activeEnemies int
	waveEnded     bool
}

func NewWaveSystem(ecs *entity.ECS, cfg defs.WaveConfig, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		cfg:             cfg,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		pool:            entity.NewPool(entity.ResetEnemyBundle),
		bundles:         make(map[types.EntityID]*entity.EnemyBundle),
	}
}

// StartWave начинает волну номер number на заданном маршруте.
func (s *WaveSystem) StartWave(number int, waypoints []geom.Point) *component.Wave {
	if len(waypoints) < 2 {
		log.Println("WaveSystem: маршрут короче двух вершин, волна не началась")
		return nil
	}
	s.waypoints = waypoints
	s.activeEnemies = 0
	s.waveEnded = false

	wave := &component.Wave{
		Number:        number,
		Budget:        s.cfg.BaseBudget * math.Pow(s.cfg.GrowthFactor, float64(number-1)),
		SpawnInterval: s.cfg.SpawnInterval,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: number})
	return wave
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}

	if !wave.AllBudgetSpent {
		wave.SpawnTimer += deltaTime
		for wave.SpawnTimer >= wave.SpawnInterval && !wave.AllBudgetSpent {
			wave.SpawnTimer -= wave.SpawnInterval
			s.trySpawn(wave)
		}
	}

	if wave.AllBudgetSpent && s.activeEnemies == 0 && !s.waveEnded {
		s.waveEnded = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
	}
}

// trySpawn выбирает и выпускает одного врага, либо закрывает фазу
// спавна, если остатка бюджета не хватает ни на один тип.
func (s *WaveSystem) trySpawn(wave *component.Wave) {
	affordable := s.affordableTypes(wave)
	if len(affordable) == 0 {
		wave.AllBudgetSpent = true
		return
	}

	// Вероятностный гейт: тип проходит в кандидаты с шансом, растущим
	// от волны знакомства. Пустой бросок — не конец волны, просто в
	// этом такте никто не вышел.
	candidates := affordable[:0]
	for _, id := range affordable {
		if s.rng.Float64() < s.introProbability(defs.EnemyLibrary[id], wave.Number) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return
	}

	defID := candidates[s.rng.Intn(len(candidates))]
	if id := s.spawnEnemy(defID, wave.Number); id != 0 {
		wave.Spent += defs.EnemyLibrary[defID].SpawnCost
	}
}

// affordableTypes возвращает отсортированные ID типов, которые ещё
// помещаются в бюджет и в принципе допущены к этой волне.
func (s *WaveSystem) affordableTypes(wave *component.Wave) []string {
	remaining := wave.Remaining()
	ids := make([]string, 0, len(defs.EnemyLibrary))
	for id, def := range defs.EnemyLibrary {
		if def.SpawnCost <= remaining && s.introProbability(def, wave.Number) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// introProbability — линейная рампа допуска типа: 0 до IntroWave,
// 1 начиная с IntroWave+RampWaves.
func (s *WaveSystem) introProbability(def defs.EnemyDefinition, waveNumber int) float64 {
	if waveNumber < def.IntroWave {
		return 0
	}
	if def.RampWaves <= 0 {
		return 1
	}
	p := float64(waveNumber-def.IntroWave+1) / float64(def.RampWaves)
	if p > 1 {
		p = 1
	}
	return p
}

// spawnEnemy создаёт врага типа defID в начале пути. Характеристики
// масштабируются глобальными коэффициентами волны.
func (s *WaveSystem) spawnEnemy(defID string, waveNumber int) types.EntityID {
	def, ok := defs.EnemyLibrary[defID]
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", defID)
		return 0
	}

	scale := float64(waveNumber - 1)
	id := s.ecs.NewEntity()
	b := s.pool.Get()

	b.Enemy = component.Enemy{
		DefID:       defID,
		Health:      def.Health * (1 + s.cfg.HealthScale*scale),
		Armor:       def.Armor,
		Resistances: def.Resistances,
		Bounty:      int(math.Round(float64(def.Bounty) * (1 + s.cfg.BountyScale*scale))),
		Radius:      def.Radius,
	}
	b.Enemy.MaxHealth = b.Enemy.Health
	b.Velocity = component.Velocity{Speed: def.Speed * (1 + s.cfg.SpeedScale*scale)}
	b.Follower = component.PathFollower{Waypoints: s.waypoints}
	start := s.waypoints[0]
	b.Position = component.Position{X: start.X, Y: start.Y}
	b.Renderable = component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(def.Radius),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	s.ecs.Enemies[id] = &b.Enemy
	s.ecs.Velocities[id] = &b.Velocity
	s.ecs.PathFollowers[id] = &b.Follower
	s.ecs.StatusEffects[id] = &b.Effects
	s.ecs.Positions[id] = &b.Position
	s.ecs.Renderables[id] = &b.Renderable
	s.bundles[id] = b
	s.activeEnemies++
	return id
}

// Free удаляет врага из живых коллекций и возвращает бандл в пул.
func (s *WaveSystem) Free(id types.EntityID) {
	b, ok := s.bundles[id]
	if !ok {
		return
	}
	delete(s.ecs.Enemies, id)
	delete(s.ecs.Velocities, id)
	delete(s.ecs.PathFollowers, id)
	delete(s.ecs.StatusEffects, id)
	delete(s.ecs.Positions, id)
	delete(s.ecs.Renderables, id)
	delete(s.bundles, id)
	s.pool.Put(b)
	s.activeEnemies--
}

// ActiveEnemies — число живых врагов текущей волны.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

// PoolFreeCount — число бандлов, ожидающих переиспользования.
func (s *WaveSystem) PoolFreeCount() int {
	return s.pool.FreeCount()
}
