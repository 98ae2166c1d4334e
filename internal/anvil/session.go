package anvil

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-forge/internal/smithy"
)

var (
	ErrNotHotEnough = errors.New("anvil: item not hot enough")
	ErrInvalidForm  = errors.New("anvil: cannot forge into that form")
	ErrNotReady     = errors.New("anvil: item and form must be chosen first")
	ErrWrongPhase   = errors.New("anvil: operation not allowed in this phase")
)

// Phase is the state of an anvil session.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhaseExiting
	PhaseDone
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhaseExiting:
		return "exiting"
	case PhaseDone:
		return "done"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Payout converts raw points into the item's new value.
func Payout(multiplier float64, points int) int {
	return int(math.Round(multiplier * float64(points)))
}

// Session walks one item through Setup, Running and Exiting.
// The item pointer must stay valid until the session is done.
type Session struct {
	cfg   Config
	rng   *rand.Rand
	phase Phase

	item       *smithy.Product
	form       smithy.Form
	formChosen bool
	multiplier float64

	round  *Round
	dwell  int
	payout int
}

// NewSession starts a session in the Setup phase.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	return &Session{cfg: cfg, rng: rng}
}

// SelectItem chooses the piece to work. Items below their working
// temperature are refused.
func (s *Session) SelectItem(p *smithy.Product) error {
	if s.phase != PhaseSetup {
		return ErrWrongPhase
	}
	band := p.Band()
	if band == smithy.Under {
		return ErrNotHotEnough
	}
	s.item = p
	s.multiplier = band.Multiplier()
	return nil
}

// SelectForm chooses the target shape.
func (s *Session) SelectForm(f smithy.Form) error {
	if s.phase != PhaseSetup {
		return ErrWrongPhase
	}
	for _, wf := range smithy.WorkedForms {
		if wf == f {
			s.form = f
			s.formChosen = true
			return nil
		}
	}
	return ErrInvalidForm
}

// Cancel aborts the session without touching the item.
func (s *Session) Cancel() {
	if s.phase == PhaseSetup {
		s.phase = PhaseCancelled
	}
}

// Start puts the item on the anvil and begins the round.
func (s *Session) Start() error {
	if s.phase != PhaseSetup {
		return ErrWrongPhase
	}
	if s.item == nil || !s.formChosen {
		return ErrNotReady
	}
	s.item.Location = smithy.Anvil
	s.round = NewRound(s.cfg, s.rng)
	s.phase = PhaseRunning
	return nil
}

// Step advances the session by one tick.
func (s *Session) Step(p Presses, quit bool) {
	switch s.phase {
	case PhaseRunning:
		if s.round.Step(p, quit) {
			s.exit()
		}
	case PhaseExiting:
		s.dwell--
		if s.dwell <= 0 {
			s.phase = PhaseDone
		}
	}
}

// exit writes the result back to the item. Every end reason pays out the
// points accumulated so far.
func (s *Session) exit() {
	s.payout = Payout(s.multiplier, s.round.Points())
	s.item.Value = s.payout
	s.item.Form = s.form
	s.item.Location = smithy.Storage
	s.dwell = s.cfg.DwellTicks
	s.phase = PhaseExiting
	if s.dwell <= 0 {
		s.phase = PhaseDone
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the running round, or nil before Start.
func (s *Session) Round() *Round { return s.round }

// Item returns the selected item.
func (s *Session) Item() *smithy.Product { return s.item }

// Form returns the chosen form.
func (s *Session) Form() smithy.Form { return s.form }

// Multiplier returns the payout factor fixed at selection.
func (s *Session) Multiplier() float64 { return s.multiplier }

// Points returns the raw points of the round.
func (s *Session) Points() int {
	if s.round == nil {
		return 0
	}
	return s.round.Points()
}

// Payout returns the value written to the item on exit.
func (s *Session) Payout() int { return s.payout }

// Played reports whether the round actually ran.
func (s *Session) Played() bool { return s.round != nil }
