package game

import (
	"github.com/39bytes/cloth-sim/internal/shared/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func ReadPointer() input.State {
	x, y := ebiten.CursorPosition()
	return input.State{
		X:     float64(x),
		Y:     float64(y),
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

func ReadRestart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func ReadPaused() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
