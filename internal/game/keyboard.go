package game

// Key is one of the six steering keys of the timed variant.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyZ
	KeyX
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyZ:
		return "z"
	case KeyX:
		return "x"
	default:
		return "none"
	}
}

// ParseKey maps a DOM-style key identifier to a Key. Unknown identifiers
// return KeyNone.
func ParseKey(id string) Key {
	switch id {
	case "ArrowUp", "Up", "up":
		return KeyUp
	case "ArrowDown", "Down", "down":
		return KeyDown
	case "ArrowLeft", "Left", "left":
		return KeyLeft
	case "ArrowRight", "Right", "right":
		return KeyRight
	case "z", "Z":
		return KeyZ
	case "x", "X":
		return KeyX
	default:
		return KeyNone
	}
}

// KeyboardState records which steering keys are held.
type KeyboardState struct {
	held [keyCount]bool
}

// Set marks k held or released. KeyNone is ignored.
func (ks *KeyboardState) Set(k Key, down bool) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	ks.held[k] = down
}

// Held reports whether k is down.
func (ks KeyboardState) Held(k Key) bool {
	if k <= KeyNone || k >= keyCount {
		return false
	}
	return ks.held[k]
}

// Clear releases every key.
func (ks *KeyboardState) Clear() {
	ks.held = [keyCount]bool{}
}

// Any reports whether at least one key is held.
func (ks KeyboardState) Any() bool {
	for _, h := range ks.held {
		if h {
			return true
		}
	}
	return false
}

// Resolve folds the held keys into one frame's deltas. Opposite keys
// cancel out.
func (ks *KeyboardState) Resolve(rotStep, scaleStep float64) (yaw, pitch, scale float64) {
	if ks.held[KeyLeft] {
		yaw -= rotStep
	}
	if ks.held[KeyRight] {
		yaw += rotStep
	}
	if ks.held[KeyUp] {
		pitch -= rotStep
	}
	if ks.held[KeyDown] {
		pitch += rotStep
	}
	if ks.held[KeyZ] {
		scale -= scaleStep
	}
	if ks.held[KeyX] {
		scale += scaleStep
	}
	return yaw, pitch, scale
}
