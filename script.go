package uievents

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownAction is returned for script steps with an unknown action.
var ErrUnknownAction = errors.New("uievents: unknown script action")

// ScriptNode declares one node of a scripted scene.
type ScriptNode struct {
	Name   string  `json:"name" toml:"name"`
	Parent string  `json:"parent,omitempty" toml:"parent,omitempty"`
	X      float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" toml:"y,omitempty"`
	Width  float64 `json:"width,omitempty" toml:"width,omitempty"`
	Height float64 `json:"height,omitempty" toml:"height,omitempty"`
	// Selectable attaches a Button so the node takes part in selection and
	// navigation.
	Selectable bool `json:"selectable,omitempty" toml:"selectable,omitempty"`
	// Entity associates an ECS entity id with the node.
	Entity uint32 `json:"entity,omitempty" toml:"entity,omitempty"`
	// Handlers names the capabilities a replay traces on the node.
	Handlers []string `json:"handlers,omitempty" toml:"handlers,omitempty"`
}

// Step is one scripted input action.
type Step struct {
	Action string  `json:"action" toml:"action"`
	X      float64 `json:"x,omitempty" toml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" toml:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty" toml:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty" toml:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty" toml:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty" toml:"toY,omitempty"`
	Frames int     `json:"frames,omitempty" toml:"frames,omitempty"`
	// Button is "left", "right" or "middle" for mouse actions.
	Button string `json:"button,omitempty" toml:"button,omitempty"`
	// Touch fields.
	ID    int    `json:"id,omitempty" toml:"id,omitempty"`
	Phase string `json:"phase,omitempty" toml:"phase,omitempty"`
	// Name is the axis or virtual button for "axis" and "key".
	Name  string  `json:"name,omitempty" toml:"name,omitempty"`
	Value float64 `json:"value,omitempty" toml:"value,omitempty"`
}

// Script is a scene description plus the input to replay against it.
type Script struct {
	Nodes []ScriptNode `json:"nodes" toml:"nodes"`
	Steps []Step       `json:"steps" toml:"steps"`
}

// LoadScript parses a script in "json" or "toml" format.
func LoadScript(data []byte, format string) (*Script, error) {
	var script Script
	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &script); err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &script); err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
	default:
		return nil, fmt.Errorf("parse script: unsupported format %q", format)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		if _, err := expandStep(st); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &script, nil
}

// LoadScriptFile reads a script, choosing the format from the extension.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Build creates the script's nodes in tree under a new root and registers
// a hit rectangle for each sized node on canvas. Selectable nodes get a
// Button in group when group is non-nil. It returns the nodes by name.
func (sc *Script) Build(tree *Tree, canvas *Canvas, group *SelectableGroup) (map[string]NodeID, error) {
	ids := make(map[string]NodeID, len(sc.Nodes))
	root := tree.NewNode("root")
	for _, n := range sc.Nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("build script: node without name")
		}
		if _, dup := ids[n.Name]; dup {
			return nil, fmt.Errorf("build script: duplicate node %q", n.Name)
		}
		parent := root
		if n.Parent != "" {
			p, ok := ids[n.Parent]
			if !ok {
				return nil, fmt.Errorf("build script: node %q: unknown parent %q", n.Name, n.Parent)
			}
			parent = p
		}
		id := tree.NewChild(parent, n.Name)
		ids[n.Name] = id
		if n.Entity != 0 {
			tree.SetEntityID(id, n.Entity)
		}
		if _, err := ParseCapabilitySet(n.Handlers); err != nil {
			return nil, fmt.Errorf("build script: node %q: %w", n.Name, err)
		}
		if n.Width > 0 && n.Height > 0 {
			r := HitRect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
			if canvas != nil {
				canvas.AddGraphic(id, r)
			}
			if n.Selectable && group != nil {
				group.NewButton(id, r.Bounds(), nil)
			}
		}
	}
	return ids, nil
}

// frameAction mutates the snapshot for one frame.
type frameAction func(s *Snapshot)

func parseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

func parsePhase(name string) (TouchPhase, error) {
	switch strings.ToLower(name) {
	case "", "began":
		return TouchBegan, nil
	case "moved":
		return TouchMoved, nil
	case "stationary":
		return TouchStationary, nil
	case "ended":
		return TouchEnded, nil
	case "canceled":
		return TouchCanceled, nil
	}
	return 0, fmt.Errorf("unknown touch phase %q", name)
}

// expandStep turns one step into per-frame actions.
func expandStep(st Step) ([]frameAction, error) {
	pos := Vec2{st.X, st.Y}
	switch st.Action {
	case "move":
		return []frameAction{func(s *Snapshot) { s.Cursor = pos }}, nil

	case "press", "release", "click":
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, err
		}
		press := func(s *Snapshot) { s.Cursor = pos; s.Press(b) }
		release := func(s *Snapshot) { s.Cursor = pos; s.Release(b) }
		switch st.Action {
		case "press":
			return []frameAction{press}, nil
		case "release":
			return []frameAction{release}, nil
		}
		return []frameAction{press, release}, nil

	case "drag":
		b, err := parseButton(st.Button)
		if err != nil {
			return nil, err
		}
		frames := max(st.Frames, 2)
		from, to := Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}
		actions := []frameAction{func(s *Snapshot) { s.Cursor = from; s.Press(b) }}
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			p := from.Add(to.Sub(from).Scale(t))
			actions = append(actions, func(s *Snapshot) { s.Cursor = p })
		}
		return append(actions, func(s *Snapshot) { s.Cursor = to; s.Release(b) }), nil

	case "touch":
		phase, err := parsePhase(st.Phase)
		if err != nil {
			return nil, err
		}
		t := Touch{ID: st.ID, Phase: phase, Position: pos}
		return []frameAction{func(s *Snapshot) { s.TouchOK = true; setTouch(s, t) }}, nil

	case "key":
		if st.Name == "" {
			return nil, fmt.Errorf("key step needs a name")
		}
		name, value := st.Name, st.Value
		return []frameAction{func(s *Snapshot) {
			s.PressButton(name)
			if value != 0 {
				s.SetAxis(name, value)
			}
		}}, nil

	case "axis":
		if st.Name == "" {
			return nil, fmt.Errorf("axis step needs a name")
		}
		name, value := st.Name, st.Value
		return []frameAction{func(s *Snapshot) { s.SetAxis(name, value) }}, nil

	case "scroll":
		return []frameAction{func(s *Snapshot) { s.Scroll = pos }}, nil

	case "wait":
		return make([]frameAction, max(st.Frames, 1)), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAction, st.Action)
}

func setTouch(s *Snapshot, t Touch) {
	for i := range s.Touches {
		if s.Touches[i].ID == t.ID {
			s.Touches[i] = t
			return
		}
	}
	s.Touches = append(s.Touches, t)
}

// ScriptedInput replays a Script one frame per Poll. It is an InputSource
// and drives a module without a window.
type ScriptedInput struct {
	Snapshot

	// Paused holds the script: Poll still ends the previous frame but
	// applies nothing.
	Paused bool

	queue  []frameAction
	cursor int
	polled bool
}

// NewScriptedInput expands the script's steps into frames.
func NewScriptedInput(sc *Script) (*ScriptedInput, error) {
	in := &ScriptedInput{Snapshot: *NewSnapshot()}
	for i, st := range sc.Steps {
		actions, err := expandStep(st)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		in.queue = append(in.queue, actions...)
	}
	return in, nil
}

// Poll implements Poller. It clears the previous frame's edges and applies
// the next frame of the script.
func (in *ScriptedInput) Poll() {
	if in.polled {
		in.EndFrame()
	}
	in.polled = true
	if in.Paused || in.cursor >= len(in.queue) {
		return
	}
	if a := in.queue[in.cursor]; a != nil {
		a(&in.Snapshot)
	}
	in.cursor++
}

// Done reports whether every scripted frame was applied.
func (in *ScriptedInput) Done() bool { return in.cursor >= len(in.queue) }

// Frames returns the total number of scripted frames.
func (in *ScriptedInput) Frames() int { return len(in.queue) }
