package zoom

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("zoom: script has no steps")

// ScriptStep is a single action in an input script.
type ScriptStep struct {
	Action string  `yaml:"action" json:"action"`
	Label  string  `yaml:"label,omitempty" json:"label,omitempty"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty" json:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty" json:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty" json:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty" json:"toY,omitempty"`
	DeltaY float64 `yaml:"deltaY,omitempty" json:"deltaY,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`
}

type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected gestures and screenshots across frames
// for automated visual checks. Attach to a Canvas via SetScriptRunner.
//
// Actions: click, rightclick, wheel, drag, hover, wait, screenshot.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) script:
//
//	steps:
//	  - {action: click, x: 100, y: 80}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: zoomed}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("zoom: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "click", "rightclick", "wheel", "drag", "hover", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("zoom: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches r to the canvas. The runner advances once per
// frame in Update, before input is processed.
func (c *Canvas) SetScriptRunner(r *ScriptRunner) {
	c.script = r
}

// Done reports whether every step has run and its input has drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	Logger().WithField("action", st.Action).Debug("script step")

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "rightclick":
		c.InjectRightClick(st.X, st.Y)
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.DeltaY)
	case "hover":
		c.InjectHover(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
