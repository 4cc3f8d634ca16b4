package timer

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Cue identifies a sound the host should play. The core never plays audio,
// it only hands cue IDs to the presentation collaborator.
type Cue string

// Countdown is an externally-ticked turn clock. The host event loop calls
// Tick on its own cadence; the countdown keeps no goroutines and never
// schedules itself. Remaining time is deadline-based, so uneven or delayed
// ticks still converge on the right cues.
type Countdown struct {
	clock clockwork.Clock
	log   zerolog.Logger

	thresholds map[int]Cue // remaining whole seconds -> cue
	timeoutCue Cue

	deadline time.Time
	running  bool
	fired    map[int]bool // thresholds already cued this run
	timedOut bool         // timeout cue already emitted this run
}

// New creates a countdown with the given cue thresholds. A zero clock
// defaults to the wall clock.
func New(thresholds map[int]Cue, timeoutCue Cue, clock clockwork.Clock, log zerolog.Logger) *Countdown {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Countdown{
		clock:      clock,
		log:        log,
		thresholds: thresholds,
		timeoutCue: timeoutCue,
		fired:      make(map[int]bool),
	}
}

// Start begins a countdown of duration d, clearing all cue state.
func (c *Countdown) Start(d time.Duration) {
	c.deadline = c.clock.Now().Add(d)
	c.running = true
	c.fired = make(map[int]bool)
	c.timedOut = false
}

// Reset reinitializes for the next turn. Same contract as Start.
func (c *Countdown) Reset(d time.Duration) {
	c.Start(d)
}

// Stop halts the countdown without firing the timeout cue.
func (c *Countdown) Stop() {
	c.running = false
}

// Remaining returns the time left, floored at zero.
func (c *Countdown) Remaining() time.Duration {
	if !c.running {
		return 0
	}
	rem := c.deadline.Sub(c.clock.Now())
	if rem < 0 {
		return 0
	}
	return rem
}

// RemainingSeconds returns the remaining time rounded up to whole seconds.
func (c *Countdown) RemainingSeconds() int {
	rem := c.Remaining()
	secs := int(rem / time.Second)
	if rem%time.Second > 0 {
		secs++
	}
	return secs
}

// IsExpired reports whether the running countdown has reached zero.
func (c *Countdown) IsExpired() bool {
	return c.running && !c.deadline.After(c.clock.Now())
}

// Tick advances the countdown on the host's cadence and returns the cues
// crossed since the previous tick, highest threshold first. Each threshold
// fires at most once per Start/Reset; the timeout cue fires exactly once at
// expiry.
func (c *Countdown) Tick() []Cue {
	if !c.running {
		return nil
	}
	rem := c.RemainingSeconds()

	var crossed []int
	for t := range c.thresholds {
		if t >= rem && !c.fired[t] {
			c.fired[t] = true
			crossed = append(crossed, t)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(crossed)))

	cues := make([]Cue, 0, len(crossed)+1)
	for _, t := range crossed {
		cues = append(cues, c.thresholds[t])
	}
	if rem == 0 && !c.timedOut {
		c.timedOut = true
		if c.timeoutCue != "" {
			cues = append(cues, c.timeoutCue)
		}
		c.log.Debug().Msg("countdown expired")
	}
	return cues
}

// CueFor looks up the cue for an exact remaining-seconds value. Like Tick, a
// threshold yields its cue only once per run.
func (c *Countdown) CueFor(remaining int) (Cue, bool) {
	cue, ok := c.thresholds[remaining]
	if !ok || c.fired[remaining] {
		return "", false
	}
	c.fired[remaining] = true
	return cue, true
}
