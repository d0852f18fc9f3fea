// Package sequence drives one door's cinematic: fade to black, media, a
// settling pause, then the door's questions one at a time. One controller
// instance lives for the whole session and is Idle between doors.
package sequence

import (
	"strings"
)

// State is the controller's lifecycle. Transitions happen only inside
// Activate, Submit, and Tick; callers observe, never assign.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

type stage int

const (
	stageNone stage = iota
	stageFadeIn
	stageMediaWait
	stageSettle
	stageQuestion
)

// Overlay is the presentation layer the controller toggles. Pure toggles;
// the controller consumes no return values from it.
type Overlay interface {
	ShowPrompt(text string)
	HidePrompt()
	ShowFade()
	HideFade()
	ShowMedia()
	HideMedia()
}

// Media is the cinematic asset. Start begins loading and, once ready,
// playback from the beginning; Ready reports it can play smoothly.
type Media interface {
	Start()
	Ready() bool
	Stop()
}

// Recorder receives validated answers. Append must reject empty text.
type Recorder interface {
	Append(doorID, question, answer string) (int, error)
}

// Hook optionally post-processes a non-empty answer. Returning ok=false
// rejects the submission (prompt stays open); the returned string replaces
// the answer when non-empty.
type Hook func(answer string) (string, bool)

// Door is one activation's worth of content. Media may be nil for a door
// with no cinematic track; the media stage is skipped for it.
type Door struct {
	ID        string
	Questions []string
	Hook      Hook
	Media     Media
}

// Config holds the fixed stage durations in logic ticks. The media wait is
// not fixed: it ends on the ready event, with MediaTimeoutFrames as the
// upper bound before the controller proceeds without media.
type Config struct {
	FadeFrames         int
	SettleFrames       int
	MediaTimeoutFrames int
}

type Controller struct {
	cfg     Config
	overlay Overlay
	rec     Recorder
	onDone  func(doorID string)

	state      State
	stage      stage
	timer      int
	door       Door
	cursor     int
	submitting bool
}

func New(cfg Config, overlay Overlay, rec Recorder, onDone func(doorID string)) *Controller {
	return &Controller{
		cfg:     cfg,
		overlay: overlay,
		rec:     rec,
		onDone:  onDone,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Busy reports whether the controller owns input: movement is suppressed
// the instant Running is entered and stays suppressed until Idle.
func (c *Controller) Busy() bool {
	return c.state != StateIdle
}

// AwaitingAnswer reports whether the prompt is open.
func (c *Controller) AwaitingAnswer() bool {
	return c.state == StateRunning && c.stage == stageQuestion
}

// CurrentQuestion returns the open prompt's text.
func (c *Controller) CurrentQuestion() (string, bool) {
	if !c.AwaitingAnswer() {
		return "", false
	}
	return c.door.Questions[c.cursor], true
}

// Activate begins a door's sequence. Rejected (false) unless the controller
// is Idle: a second trigger while one sequence runs must not start another.
func (c *Controller) Activate(door Door) bool {
	if c.state != StateIdle {
		return false
	}
	if len(door.Questions) == 0 {
		return false
	}
	c.state = StateRunning
	c.stage = stageFadeIn
	c.timer = c.cfg.FadeFrames
	c.door = door
	c.cursor = 0
	c.overlay.ShowFade()
	return true
}

// Tick advances the timed stages by one logic tick.
func (c *Controller) Tick() {
	switch c.state {
	case StateCompleted:
		// Brief terminal marker; the next tick returns to Idle so the next
		// door (or room) can claim the overlays.
		c.state = StateIdle
		return
	case StateRunning:
	default:
		return
	}

	switch c.stage {
	case stageFadeIn:
		if c.timer > 0 {
			c.timer--
			return
		}
		if c.door.Media == nil {
			c.stage = stageSettle
			c.timer = c.cfg.SettleFrames
			return
		}
		c.stage = stageMediaWait
		c.timer = c.cfg.MediaTimeoutFrames
		c.door.Media.Start()
		c.overlay.ShowMedia()
	case stageMediaWait:
		if c.door.Media.Ready() {
			c.stage = stageSettle
			c.timer = c.cfg.SettleFrames
			return
		}
		if c.timer > 0 {
			c.timer--
			return
		}
		// Timed out waiting on the asset: proceed without media rather than
		// hang the run.
		c.door.Media.Stop()
		c.overlay.HideMedia()
		c.stage = stageSettle
		c.timer = c.cfg.SettleFrames
	case stageSettle:
		if c.timer > 0 {
			c.timer--
			return
		}
		c.stage = stageQuestion
		c.overlay.ShowPrompt(c.door.Questions[c.cursor])
	}
}

// Submit handles one answer. Returns true when the submission was applied
// (entry appended, cursor advanced). Empty or hook-rejected answers leave
// the prompt open with no state change. A submission arriving while another
// is being applied is ignored.
func (c *Controller) Submit(answer string) bool {
	if !c.AwaitingAnswer() {
		return false
	}
	if c.submitting {
		return false
	}
	c.submitting = true
	defer func() { c.submitting = false }()

	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return false
	}
	if c.door.Hook != nil {
		out, ok := c.door.Hook(trimmed)
		if !ok {
			return false
		}
		if s := strings.TrimSpace(out); s != "" {
			trimmed = s
		}
	}

	question := c.door.Questions[c.cursor]
	if _, err := c.rec.Append(c.door.ID, question, trimmed); err != nil {
		return false
	}
	c.cursor++

	if c.cursor < len(c.door.Questions) {
		c.overlay.ShowPrompt(c.door.Questions[c.cursor])
		return true
	}

	c.cleanup()
	return true
}

// cleanup releases the overlays, marks the activation Completed, and
// signals the room progression. Overlays are fully released before the
// signal so a room-transition fade never contends for them.
func (c *Controller) cleanup() {
	c.overlay.HidePrompt()
	if c.door.Media != nil {
		c.door.Media.Stop()
	}
	c.overlay.HideMedia()
	c.overlay.HideFade()
	c.stage = stageNone
	c.state = StateCompleted
	if c.onDone != nil {
		c.onDone(c.door.ID)
	}
}

// Reset forces the controller back to Idle and releases any overlays it
// holds. Used by the full session reset, not the per-door flow.
func (c *Controller) Reset() {
	if c.state == StateRunning {
		c.overlay.HidePrompt()
		if c.door.Media != nil {
			c.door.Media.Stop()
		}
		c.overlay.HideMedia()
		c.overlay.HideFade()
	}
	c.state = StateIdle
	c.stage = stageNone
	c.timer = 0
	c.door = Door{}
	c.cursor = 0
	c.submitting = false
}
