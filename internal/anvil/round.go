// Package anvil implements the hammering minigame: notes fall down four lanes
// and the smith strikes each one as it crosses its receptacle.
package anvil

import (
	"math/rand"

	"github.com/vovakirdan/tui-forge/internal/core"
)

// Playfield geometry in world units.
const (
	FieldW      = 600
	FieldH      = 480
	NoteW       = 120
	NoteH       = 60
	SpawnY      = -NoteH
	ReceptacleY = 390
)

// Lane is one of the four note columns.
type Lane int

const (
	LaneLeft Lane = iota
	LaneUp
	LaneDown
	LaneRight
	LaneCount
)

var laneX = [LaneCount]int{24, 168, 312, 456}

func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "Left"
	case LaneUp:
		return "Up"
	case LaneDown:
		return "Down"
	case LaneRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Receptacle returns the fixed target rectangle of the lane.
func Receptacle(l Lane) core.Rect {
	return core.NewRect(laneX[l], ReceptacleY, NoteW, NoteH)
}

// Variant is the sprite of a note.
type Variant int

const (
	Violet Variant = iota
	Red
	Blue
	Yellow
)

// Note is a falling target.
type Note struct {
	Lane    Lane
	Y       int
	Variant Variant
}

// Rect returns the note's bounding box.
func (n Note) Rect() core.Rect {
	return core.NewRect(laneX[n.Lane], n.Y, NoteW, NoteH)
}

// Config holds the round tunables.
type Config struct {
	NoteSpeed     int // units per tick
	SpawnInterval int // ticks between notes
	Bottom        int // y at which a note counts as missed
	DwellTicks    int // summary screen duration
}

// DefaultConfig returns the standard 60 Hz tuning.
func DefaultConfig() Config {
	return Config{
		NoteSpeed:     5,
		SpawnInterval: 15,
		Bottom:        FieldH,
		DwellTicks:    60,
	}
}

// EndReason tells why a round stopped.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonMissed
	ReasonFalsePress
	ReasonQuit
)

func (r EndReason) String() string {
	switch r {
	case ReasonMissed:
		return "missed note"
	case ReasonFalsePress:
		return "struck empty lane"
	case ReasonQuit:
		return "quit"
	default:
		return "running"
	}
}

// Presses are the lane strikes of one tick.
type Presses [LaneCount]bool

// HitScore is the points for striking a note offset units away from the
// receptacle. The result is not clamped and goes negative past 100.
func HitScore(offset int) int {
	return 100 - core.Abs(offset)
}

// Round is the running phase of the minigame.
type Round struct {
	cfg       Config
	rng       *rand.Rand
	notes     []Note
	countdown int
	points    int
	hits      int
	tick      int
	reason    EndReason
}

// NewRound creates an empty round. The first note spawns on the first tick.
func NewRound(cfg Config, rng *rand.Rand) *Round {
	return &Round{
		cfg: cfg,
		rng: rng,
	}
}

// Step advances the round by one tick and reports whether it has ended.
func (r *Round) Step(p Presses, quit bool) bool {
	if r.reason != ReasonNone {
		return true
	}
	r.tick++

	if quit {
		r.reason = ReasonQuit
		return true
	}

	for i := range r.notes {
		r.notes[i].Y += r.cfg.NoteSpeed
		if r.notes[i].Y >= r.cfg.Bottom {
			r.reason = ReasonMissed
			return true
		}
	}

	for lane := LaneLeft; lane < LaneCount; lane++ {
		if !p[lane] {
			continue
		}
		idx := r.find(Receptacle(lane))
		if idx < 0 {
			r.reason = ReasonFalsePress
			return true
		}
		r.points += HitScore(r.notes[idx].Y - ReceptacleY)
		r.hits++
		r.notes = append(r.notes[:idx], r.notes[idx+1:]...)
	}

	r.spawn()
	return false
}

// find returns the index of the first note overlapping target, or -1.
func (r *Round) find(target core.Rect) int {
	for i, n := range r.notes {
		if n.Rect().Intersects(target) {
			return i
		}
	}
	return -1
}

func (r *Round) spawn() {
	if r.countdown > 0 {
		r.countdown--
		return
	}
	i := r.rng.Intn(int(LaneCount))
	r.notes = append(r.notes, Note{Lane: Lane(i), Y: SpawnY, Variant: Variant(i)})
	r.countdown = r.cfg.SpawnInterval - 1
}

// Points returns the raw points accumulated so far.
func (r *Round) Points() int { return r.points }

// Hits returns how many notes were struck.
func (r *Round) Hits() int { return r.hits }

// Tick returns the number of ticks stepped.
func (r *Round) Tick() int { return r.tick }

// Ended reports whether the round is over.
func (r *Round) Ended() bool { return r.reason != ReasonNone }

// Reason returns why the round ended.
func (r *Round) Reason() EndReason { return r.reason }

// Notes returns a copy of the live notes in spawn order.
func (r *Round) Notes() []Note {
	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}
