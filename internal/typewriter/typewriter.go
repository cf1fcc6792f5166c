// Package typewriter implements the hero section's rotating headline as an
// explicit state machine. The machine owns no timers: callers feed it
// elapsed time and read back the visible text, so the same code runs under
// a real ticker in the SSE handler and a fake clock in tests.
package typewriter

import "time"

// Phase identifies what the machine is doing with the current phrase.
type Phase string

const (
	// PhaseTyping reveals the current phrase one rune at a time
	PhaseTyping Phase = "typing"
	// PhasePausing holds the fully typed phrase on screen
	PhasePausing Phase = "pausing"
	// PhaseDeleting removes the phrase one rune at a time
	PhaseDeleting Phase = "deleting"
	// PhaseAdvancing is the gap before the next phrase starts typing
	PhaseAdvancing Phase = "advancing"
)

// Machine cycles through a fixed list of phrases. It is not safe for
// concurrent use; each SSE stream drives its own instance.
type Machine struct {
	phrases [][]rune

	phrase int
	cursor int
	phase  Phase
	wait   time.Duration

	typeDelay    time.Duration
	deleteDelay  time.Duration
	pauseDelay   time.Duration
	advanceDelay time.Duration
}

// Option configures a Machine.
type Option func(*Machine)

// WithTypeDelay sets the time between revealed runes.
func WithTypeDelay(d time.Duration) Option {
	return func(m *Machine) { m.typeDelay = d }
}

// WithDeleteDelay sets the time between removed runes.
func WithDeleteDelay(d time.Duration) Option {
	return func(m *Machine) { m.deleteDelay = d }
}

// WithPauseDelay sets how long a fully typed phrase stays on screen.
func WithPauseDelay(d time.Duration) Option {
	return func(m *Machine) { m.pauseDelay = d }
}

// WithAdvanceDelay sets the gap between deleting one phrase and typing the next.
func WithAdvanceDelay(d time.Duration) Option {
	return func(m *Machine) { m.advanceDelay = d }
}

// New creates a machine over the given phrases. With no phrases the machine
// is inert: Text stays empty and Advance does nothing.
func New(phrases []string, opts ...Option) *Machine {
	m := &Machine{
		phase:        PhaseTyping,
		typeDelay:    90 * time.Millisecond,
		deleteDelay:  45 * time.Millisecond,
		pauseDelay:   1800 * time.Millisecond,
		advanceDelay: 400 * time.Millisecond,
	}
	for _, p := range phrases {
		m.phrases = append(m.phrases, []rune(p))
	}
	for _, opt := range opts {
		opt(m)
	}
	m.wait = m.typeDelay
	return m
}

// Text returns the currently visible prefix of the active phrase.
func (m *Machine) Text() string {
	if len(m.phrases) == 0 {
		return ""
	}
	return string(m.phrases[m.phrase][:m.cursor])
}

// Phase returns the machine's current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Advance feeds elapsed wall time into the machine, stepping through as many
// transitions as that much time covers. Large elapsed values are fine; the
// machine catches up rather than drifting.
func (m *Machine) Advance(elapsed time.Duration) {
	if len(m.phrases) == 0 {
		return
	}
	m.wait -= elapsed
	for m.wait <= 0 {
		m.step()
	}
}

// step performs exactly one transition and schedules the next one.
func (m *Machine) step() {
	switch m.phase {
	case PhaseTyping:
		if m.cursor < len(m.phrases[m.phrase]) {
			m.cursor++
		}
		if m.cursor == len(m.phrases[m.phrase]) {
			m.phase = PhasePausing
			m.wait += m.pauseDelay
		} else {
			m.wait += m.typeDelay
		}
	case PhasePausing:
		m.phase = PhaseDeleting
		m.wait += m.deleteDelay
	case PhaseDeleting:
		if m.cursor > 0 {
			m.cursor--
		}
		if m.cursor == 0 {
			m.phase = PhaseAdvancing
			m.wait += m.advanceDelay
		} else {
			m.wait += m.deleteDelay
		}
	case PhaseAdvancing:
		m.phrase = (m.phrase + 1) % len(m.phrases)
		m.phase = PhaseTyping
		m.wait += m.typeDelay
	}
}
