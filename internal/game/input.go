package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cloth/internal/cloth"
)

// dragKeys maps keys to corner intents. The right corner uses IJKL in place
// of the handheld's X/B/Y/A face buttons.
var dragKeys = []struct {
	key ebiten.Key
	bit cloth.Intent
}{
	{ebiten.KeyArrowUp, cloth.LeftUp},
	{ebiten.KeyArrowDown, cloth.LeftDown},
	{ebiten.KeyArrowLeft, cloth.LeftLeft},
	{ebiten.KeyArrowRight, cloth.LeftRight},
	{ebiten.KeyI, cloth.RightUp},
	{ebiten.KeyK, cloth.RightDown},
	{ebiten.KeyJ, cloth.RightLeft},
	{ebiten.KeyL, cloth.RightRight},
}

func readIntent(pressed func(ebiten.Key) bool) cloth.Intent {
	var in cloth.Intent
	for _, k := range dragKeys {
		if pressed(k.key) {
			in |= k.bit
		}
	}
	return in
}
