package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// KeySource reports the player's controls for the current tick. Confirm and
// Restart are edge-triggered.
type KeySource interface {
	Left() bool
	Right() bool
	Confirm() bool
	Restart() bool
}

const stickDeadzone = 0.2

// EbitenKeys reads the keyboard, mouse and the first standard gamepad.
type EbitenKeys struct{}

func (EbitenKeys) Left() bool {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		return true
	}
	return stickX() < -stickDeadzone
}

func (EbitenKeys) Right() bool {
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		return true
	}
	return stickX() > stickDeadzone
}

func (EbitenKeys) Confirm() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if id, ok := firstGamepad(); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

func (EbitenKeys) Restart() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	if id, ok := firstGamepad(); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}
	return false
}

func firstGamepad() (ebiten.GamepadID, bool) {
	gamepads := ebiten.GamepadIDs()
	if len(gamepads) == 0 {
		return 0, false
	}
	return gamepads[0], true
}

func stickX() float64 {
	id, ok := firstGamepad()
	if !ok {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
}

// InputSystem copies the KeySource state into every Input component.
type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	left := i.keys.Left()
	right := i.keys.Right()
	confirm := i.keys.Confirm()
	restart := i.keys.Restart()

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Confirm = confirm
		input.Restart = restart
	})
}
