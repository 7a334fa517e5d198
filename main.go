package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/course-landing/internal/app"
	"github.com/iburimskiy/course-landing/internal/config"
	"github.com/iburimskiy/course-landing/internal/store"
)

func main() {
	dir, err := store.DefaultDir("course-landing")
	if err != nil {
		log.Printf("no user config dir, settings will not persist: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Course Landing")

	a := app.New(store.New(dir))
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
