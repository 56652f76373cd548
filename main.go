package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cloth/internal/config"
	"github.com/iburimskiy/cloth/internal/game"
)

func main() {
	path := os.Getenv("CLOTH_ENV")
	if path == "" {
		path = config.EnvFile
	}
	settings, err := config.Load(path)
	if err != nil {
		fail(err)
	}
	c := settings.Cloth
	fmt.Printf("Cloth %dx%d, spacing %.0f, %d relaxation passes, strength %.2f\n",
		c.Rows, c.Cols, c.Spacing, c.Iterations, c.Strength)

	g, err := game.New(settings)
	if err != nil {
		fail(err)
	}

	ebiten.SetWindowSize(config.ScreenWidth*config.WindowScale, config.ScreenHeight*config.WindowScale)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "cloth:", err)
	game.ShowError(err)
	os.Exit(1)
}
