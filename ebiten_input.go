package uievents

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput samples mouse, wheel, touch, keyboard and gamepad state from
// Ebitengine. It must be polled from the game's Update, which input
// modules do through UpdateModule.
type EbitenInput struct {
	Snapshot

	// Gamepad stick values below this magnitude read as zero.
	StickDeadZone float64

	touchIDs    []ebiten.TouchID
	pressedIDs  []ebiten.TouchID
	releasedIDs []ebiten.TouchID
	lastTouch   map[ebiten.TouchID]Vec2
	gamepads    []ebiten.GamepadID
	touchSeen   bool
}

// NewEbitenInput creates an Ebitengine input source with a mouse present.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		Snapshot:      *NewSnapshot(),
		StickDeadZone: 0.2,
		lastTouch:     make(map[ebiten.TouchID]Vec2),
	}
}

var ebitenButtons = [3]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Poll implements Poller.
func (in *EbitenInput) Poll() {
	s := &in.Snapshot

	mx, my := ebiten.CursorPosition()
	s.Cursor = Vec2{float64(mx), float64(my)}
	wx, wy := ebiten.Wheel()
	s.Scroll = Vec2{wx, wy}
	for b, eb := range ebitenButtons {
		s.Pressed[b] = inpututil.IsMouseButtonJustPressed(eb)
		s.Released[b] = inpututil.IsMouseButtonJustReleased(eb)
		s.Held[b] = ebiten.IsMouseButtonPressed(eb)
	}

	in.pollTouches()
	in.pollNavigation()
}

func (in *EbitenInput) pollTouches() {
	s := &in.Snapshot
	s.Touches = s.Touches[:0]
	if in.lastTouch == nil {
		in.lastTouch = make(map[ebiten.TouchID]Vec2)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	in.pressedIDs = inpututil.AppendJustPressedTouchIDs(in.pressedIDs[:0])
	in.releasedIDs = inpututil.AppendJustReleasedTouchIDs(in.releasedIDs[:0])
	if len(in.touchIDs) > 0 || len(in.releasedIDs) > 0 {
		in.touchSeen = true
	}
	s.TouchOK = in.touchSeen

	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos := Vec2{float64(x), float64(y)}
		phase := TouchStationary
		if containsTouch(in.pressedIDs, id) {
			phase = TouchBegan
		} else if last, ok := in.lastTouch[id]; !ok || last != pos {
			phase = TouchMoved
		}
		in.lastTouch[id] = pos
		s.Touches = append(s.Touches, Touch{ID: int(id), Phase: phase, Position: pos})
	}
	for _, id := range in.releasedIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		delete(in.lastTouch, id)
		s.Touches = append(s.Touches, Touch{
			ID:       int(id),
			Phase:    TouchEnded,
			Position: Vec2{float64(x), float64(y)},
		})
	}
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// pollNavigation maps arrow keys, WASD, Enter, Space, Escape and the first
// standard gamepad to the default axis and button names.
func (in *EbitenInput) pollNavigation() {
	s := &in.Snapshot
	if s.Buttons == nil {
		s.Buttons = make(map[string]bool)
	}
	clear(s.Buttons)

	h := keyAxis(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD)
	v := keyAxis(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyW)
	hDown := anyKeyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyArrowRight, ebiten.KeyD)
	vDown := anyKeyJustPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyW)
	submit := anyKeyJustPressed(ebiten.KeyEnter, ebiten.KeySpace)
	cancel := anyKeyJustPressed(ebiten.KeyEscape)

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if h == 0 {
			h = in.stick(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		}
		if v == 0 {
			// Stick Y grows downward; navigation axes grow upward.
			v = -in.stick(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		}
		hDown = hDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
		vDown = vDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			h = -1
		} else if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			h = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			v = 1
		} else if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			v = -1
		}
		submit = submit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		cancel = cancel || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
		break
	}

	s.SetAxis(AxisHorizontal, h)
	s.SetAxis(AxisVertical, v)
	s.Buttons[AxisHorizontal] = hDown
	s.Buttons[AxisVertical] = vDown
	s.Buttons[ButtonSubmit] = submit
	s.Buttons[ButtonCancel] = cancel
}

func (in *EbitenInput) stick(v float64) float64 {
	if v > -in.StickDeadZone && v < in.StickDeadZone {
		return 0
	}
	return v
}

// keyAxis returns -1, 0 or 1 from two pairs of negative and positive keys.
func keyAxis(neg1, neg2, pos1, pos2 ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg1) || ebiten.IsKeyPressed(neg2) {
		v--
	}
	if ebiten.IsKeyPressed(pos1) || ebiten.IsKeyPressed(pos2) {
		v++
	}
	return v
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
