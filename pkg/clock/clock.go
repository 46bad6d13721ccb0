// Package clock provides a virtual-time scheduler for scripted activities.
//
// Activities run on the goroutine that drives the clock (Advance or Run).
// A script executes its steps in order until it reaches a Wait step; the
// clock resumes it from the next step once simulated time has reached the
// deadline. Wake-ups due at the same instant resume in scheduling order.
package clock

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sherine-k/onboarding/pkg/logging"
)

// State is the run state of the clock
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrFinished is returned when starting a clock that has already finished.
var ErrFinished = errors.New("clock has finished")

// Config configures a Clock
type Config struct {
	// FrameDelay is the real time Run sleeps after each simulated instant.
	// Zero runs as fast as possible.
	FrameDelay time.Duration
	// End is the simulated time at which the clock finishes. Zero means the
	// clock finishes when no activity is pending.
	End time.Duration
	// Epoch is the wall time that simulated time zero maps to.
	Epoch  time.Time
	Logger *slog.Logger
}

// Clock advances simulated time and resumes suspended activities.
// It is not safe for concurrent use.
type Clock struct {
	now        time.Duration
	epoch      time.Time
	end        time.Duration
	frameDelay time.Duration
	state      State
	seq        uint64
	queue      wakeups
	failures   []error
	abandoned  int
	logger     *slog.Logger

	stateListeners []func(State)
	timeListeners  []func(time.Duration)
}

// New creates an idle clock at simulated time zero
func New(cfg Config) *Clock {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	epoch := cfg.Epoch
	if epoch.IsZero() {
		epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Clock{
		epoch:      epoch,
		end:        cfg.End,
		frameDelay: cfg.FrameDelay,
		logger:     logger,
	}
}

// Now returns the elapsed simulated time
func (c *Clock) Now() time.Duration {
	return c.now
}

// Time returns the simulated wall time
func (c *Clock) Time() time.Time {
	return c.epoch.Add(c.now)
}

// State returns the current run state
func (c *Clock) State() State {
	return c.state
}

// Pending returns the number of suspended activities
func (c *Clock) Pending() int {
	return c.queue.Len()
}

// Abandoned returns how many suspended activities were dropped by Pause or Finish.
func (c *Clock) Abandoned() int {
	return c.abandoned
}

// Failures returns the errors raised by activity steps
func (c *Clock) Failures() []error {
	return append([]error(nil), c.failures...)
}

// OnStateChange registers a listener for run state transitions
func (c *Clock) OnStateChange(fn func(State)) {
	c.stateListeners = append(c.stateListeners, fn)
}

// OnTimeAdvance registers a listener called whenever simulated time moves.
func (c *Clock) OnTimeAdvance(fn func(time.Duration)) {
	c.timeListeners = append(c.timeListeners, fn)
}

// Schedule starts an activity at the current instant. Activities cannot be
// scheduled on a paused or finished clock.
func (c *Clock) Schedule(a Activity) bool {
	if c.state == Paused || c.state == Finished {
		c.logger.Debug("activity rejected", "activity", a.Name(), "state", c.state)
		return false
	}
	p := &process{id: uuid.New(), activity: a, steps: a.Script()}
	c.logger.Log(context.Background(), logging.LevelTrace, "activity scheduled", "activity", a.Name(), "process", p.id, "at", c.now)
	c.enqueue(c.now, p)
	return true
}

// Start moves an idle or paused clock to Running.
func (c *Clock) Start() error {
	switch c.state {
	case Running:
		return nil
	case Finished:
		return ErrFinished
	}
	c.setState(Running)
	return nil
}

// Pause stops the clock and abandons every suspended activity.
func (c *Clock) Pause() {
	if c.state != Running {
		return
	}
	c.abandon()
	c.setState(Paused)
}

// Finish ends the run and abandons every suspended activity.
func (c *Clock) Finish() {
	if c.state == Finished {
		return
	}
	c.abandon()
	c.setState(Finished)
}

// Advance moves simulated time forward by d. While running, every activity
// due up to the new time is resumed in order; otherwise only time moves.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	if c.end > 0 && target > c.end {
		target = c.end
	}
	for c.state == Running && c.queue.Len() > 0 && c.queue[0].at <= target {
		c.stepInstant()
	}
	c.setNow(target)
	if c.state == Running && c.end > 0 && c.now >= c.end {
		c.Finish()
	}
}

// Run resumes activities instant by instant until the clock stops running
// or ctx is cancelled. Cancellation pauses the clock.
func (c *Clock) Run(ctx context.Context) error {
	for c.state == Running {
		if err := ctx.Err(); err != nil {
			c.Pause()
			return err
		}
		if !c.Step() {
			break
		}
		if c.frameDelay > 0 {
			select {
			case <-ctx.Done():
				c.Pause()
				return ctx.Err()
			case <-time.After(c.frameDelay):
			}
		}
	}
	return nil
}

// Step jumps to the next instant with pending activities and resumes them.
// It finishes the clock and returns false when nothing is left before End.
func (c *Clock) Step() bool {
	if c.state != Running {
		return false
	}
	if c.queue.Len() == 0 || (c.end > 0 && c.queue[0].at > c.end) {
		if c.end > 0 {
			c.setNow(c.end)
		}
		c.Finish()
		return false
	}
	c.stepInstant()
	return true
}

// stepInstant resumes every process due at the earliest pending instant,
// including those scheduled for that instant while it is being processed.
func (c *Clock) stepInstant() {
	at := c.queue[0].at
	c.setNow(at)
	for c.state == Running && c.queue.Len() > 0 && c.queue[0].at == at {
		w := heap.Pop(&c.queue).(*wakeup)
		c.resume(w.proc)
	}
}

func (c *Clock) resume(p *process) {
	for p.pc < len(p.steps) {
		step := p.steps[p.pc]
		p.pc++

		if c.state != Running {
			c.abandoned++
			return
		}
		if step.IsWait() {
			c.enqueue(c.now+step.wait, p)
			return
		}
		if err := safeCall(step.call); err != nil {
			err = fmt.Errorf("activity %s: %w", p.activity.Name(), err)
			c.failures = append(c.failures, err)
			c.logger.Error("activity failed", "process", p.id, "error", err)
			return
		}
	}
	c.logger.Debug("activity completed", "activity", p.activity.Name(), "process", p.id, "at", c.now)
}

func (c *Clock) enqueue(at time.Duration, p *process) {
	c.seq++
	heap.Push(&c.queue, &wakeup{at: at, seq: c.seq, proc: p})
}

func (c *Clock) abandon() {
	if n := c.queue.Len(); n > 0 {
		c.abandoned += n
		c.logger.Debug("abandoning pending activities", "count", n, "at", c.now)
	}
	c.queue = c.queue[:0]
}

func (c *Clock) setNow(now time.Duration) {
	if now == c.now {
		return
	}
	c.now = now
	for _, fn := range c.timeListeners {
		fn(now)
	}
}

func (c *Clock) setState(state State) {
	if state == c.state {
		return
	}
	c.state = state
	c.logger.Debug("clock state changed", "state", state, "at", c.now)
	for _, fn := range c.stateListeners {
		fn(state)
	}
}

func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

type process struct {
	id       uuid.UUID
	activity Activity
	steps    []Step
	pc       int
}

type wakeup struct {
	at   time.Duration
	seq  uint64
	proc *process
}

// wakeups is a min-heap ordered by time then scheduling sequence
type wakeups []*wakeup

func (w wakeups) Len() int { return len(w) }
func (w wakeups) Less(i, j int) bool {
	if w[i].at != w[j].at {
		return w[i].at < w[j].at
	}
	return w[i].seq < w[j].seq
}
func (w wakeups) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

func (w *wakeups) Push(x any) {
	*w = append(*w, x.(*wakeup))
}

func (w *wakeups) Pop() any {
	old := *w
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*w = old[:n-1]
	return item
}
