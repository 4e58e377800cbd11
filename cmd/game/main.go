// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	towersPath := flag.String("towers", "", "путь к JSON с определениями башен (пусто — встроенные)")
	enemiesPath := flag.String("enemies", "", "путь к JSON с определениями врагов (пусто — встроенные)")
	seed := flag.Int64("seed", 0, "сид генератора (0 — от времени)")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadDefaults(); err != nil {
		log.Fatalf("load default definitions: %v", err)
	}
	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatalf("load tower definitions: %v", err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatalf("load enemy definitions: %v", err)
		}
	}
	if err := defs.Validate(); err != nil {
		log.Fatalf("validate definitions: %v", err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Waypoint Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
