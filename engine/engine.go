package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// Targeter picks the next cell the computer fires at. It may read the board
// and mutate the memory it is handed, nothing else.
type Targeter interface {
	NextTarget(b *Board, d Difficulty, m *Memory) (Coord, bool)
}

// Engine is the turn coordinator. It owns the current session and advances
// it in response to placement clicks, fire clicks and the expiry of the
// inter-turn delay.
//
// Hooks are invoked after the engine lock is released, so they may call back
// into Snapshot.
type Engine struct {
	Targeter Targeter
	Rand     *rand.Rand

	HandleStatus       func(msg string)
	HandleBoardChanged func(owner Owner)
	HandlePhaseChanged func(phase Phase)
	Delay              func()

	mu      sync.Mutex
	session *Session
	pending sync.WaitGroup
}

func New(targeter Targeter, rnd *rand.Rand) *Engine {
	return &Engine{Targeter: targeter, Rand: rnd}
}

// outbox collects hook calls made while the lock is held.
type outbox []func()

func (e *Engine) status(out *outbox, msg string) {
	*out = append(*out, func() {
		if e.HandleStatus != nil {
			e.HandleStatus(msg)
		}
	})
}

func (e *Engine) boardChanged(out *outbox, owner Owner) {
	*out = append(*out, func() {
		if e.HandleBoardChanged != nil {
			e.HandleBoardChanged(owner)
		}
	})
}

func (e *Engine) setPhase(out *outbox, s *Session, phase Phase) {
	log.Debug("phase", "session", s.ID, "from", s.Phase, "to", phase)
	s.Phase = phase
	*out = append(*out, func() {
		if e.HandlePhaseChanged != nil {
			e.HandlePhaseChanged(phase)
		}
	})
}

func (out outbox) deliver() {
	for _, fn := range out {
		fn()
	}
}

// Start creates a new session in Placement with the computer fleet placed.
func (e *Engine) Start(d Difficulty) error {
	return e.replaceSession(d, "Place your 5 ships...")
}

// Restart discards the current session, whatever its phase, and starts a
// fresh one. A computer turn still pending for the old session is dropped.
func (e *Engine) Restart(d Difficulty) error {
	return e.replaceSession(d, "Place your 5 ships again...")
}

func (e *Engine) replaceSession(d Difficulty, msg string) error {
	var out outbox
	defer func() { out.deliver() }()

	e.mu.Lock()
	defer e.mu.Unlock()

	s := newSession(d)
	if err := AutoPlace(&s.ComputerBoard, e.Rand, FleetSize); err != nil {
		return fmt.Errorf("place computer fleet: %w", err)
	}

	prev := ""
	if e.session != nil {
		prev = e.session.ID
	}
	e.session = s
	log.Info("session started", "session", s.ID, "previous", prev, "difficulty", d)

	e.boardChanged(&out, PlayerSide)
	e.boardChanged(&out, ComputerSide)
	out = append(out, func() {
		if e.HandlePhaseChanged != nil {
			e.HandlePhaseChanged(Placement)
		}
	})
	e.status(&out, msg)
	return nil
}

// PlaceShip places one player ship during Placement.
func (e *Engine) PlaceShip(c Coord) PlaceResult {
	var out outbox
	defer func() { out.deliver() }()

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Phase != Placement {
		log.Debug("placement ignored", "x", c.X, "y", c.Y, "reason", OutOfPhase)
		return OutOfPhase
	}

	res := PlaceShip(&s.PlayerBoard, &s.ShipsToPlace, c)
	if res != Placed {
		log.Debug("placement rejected", "session", s.ID, "x", c.X, "y", c.Y, "reason", res)
		return res
	}
	log.Debug("ship placed", "session", s.ID, "x", c.X, "y", c.Y, "left", s.ShipsToPlace)
	e.boardChanged(&out, PlayerSide)

	if s.ShipsToPlace == 0 {
		e.setPhase(&out, s, PlayerTurn)
		e.status(&out, "Game started. Fire cannons!")
	} else {
		e.status(&out, fmt.Sprintf("Place ships: %d left", s.ShipsToPlace))
	}
	return res
}

// Fire resolves the player's shot at the computer board. A repeat shot, an
// off-board cell or a shot outside PlayerTurn is rejected and consumes no
// turn.
func (e *Engine) Fire(c Coord) ShotOutcome {
	var out outbox
	defer func() { out.deliver() }()

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.Phase != PlayerTurn || !c.InBounds() {
		log.Debug("fire ignored", "x", c.X, "y", c.Y)
		return Rejected
	}
	if s.ComputerBoard.Targeted(c) {
		log.Debug("repeat shot", "session", s.ID, "x", c.X, "y", c.Y)
		e.status(&out, "Already fired there")
		return Rejected
	}

	outcome := Fire(&s.ComputerBoard, c)
	log.Info("player shot", "session", s.ID, "x", c.X, "y", c.Y, "outcome", outcome)
	e.boardChanged(&out, ComputerSide)
	if outcome == ShotHit {
		e.status(&out, "HIT!")
	} else {
		e.status(&out, "Miss...")
	}

	if s.ComputerBoard.AllShipsDestroyed() {
		e.setPhase(&out, s, PlayerWon)
		e.status(&out, "YOU WIN!")
		return outcome
	}

	e.setPhase(&out, s, ComputerTurn)
	e.scheduleComputerTurn(s.ID)
	return outcome
}

// scheduleComputerTurn runs the computer's shot after Delay. The
// continuation is bound to sessionID and does nothing if the session has
// been replaced in the meantime.
func (e *Engine) scheduleComputerTurn(sessionID string) {
	e.pending.Add(1)
	go func() {
		defer e.pending.Done()
		if e.Delay != nil {
			e.Delay()
		}
		e.computerTurn(sessionID)
	}()
}

func (e *Engine) computerTurn(sessionID string) {
	var out outbox
	defer func() { out.deliver() }()

	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session
	if s == nil || s.ID != sessionID || s.Phase != ComputerTurn {
		log.Debug("discarding stale computer turn", "session", sessionID)
		return
	}

	target, ok := e.Targeter.NextTarget(&s.PlayerBoard, s.Difficulty, &s.Memory)
	if !ok || !target.InBounds() || s.PlayerBoard.Targeted(target) {
		log.Warn("targeter returned unusable cell, falling back to random", "session", s.ID, "x", target.X, "y", target.Y, "ok", ok)
		target, ok = e.randomUntargeted(&s.PlayerBoard)
	}
	if !ok {
		log.Error("no untargeted cell left on player board", "session", s.ID)
		e.setPhase(&out, s, PlayerTurn)
		return
	}

	outcome := Fire(&s.PlayerBoard, target)
	log.Info("computer shot", "session", s.ID, "difficulty", s.Difficulty, "x", target.X, "y", target.Y, "outcome", outcome)
	e.boardChanged(&out, PlayerSide)
	if outcome == ShotHit {
		s.Memory.RecordHit(target)
		e.status(&out, "Enemy HIT!")
	} else {
		e.status(&out, "Enemy missed")
	}

	if s.PlayerBoard.AllShipsDestroyed() {
		e.setPhase(&out, s, PlayerLost)
		e.status(&out, "YOU LOSE!")
		return
	}

	e.setPhase(&out, s, PlayerTurn)
	e.status(&out, "Your turn, fire!")
}

func (e *Engine) randomUntargeted(b *Board) (Coord, bool) {
	free := b.Untargeted()
	if len(free) == 0 {
		return Coord{}, false
	}
	return free[e.Rand.Intn(len(free))], true
}

// Snapshot returns a deep copy of the current session, or false before the
// first Start.
func (e *Engine) Snapshot() (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Session{}, false
	}
	return e.session.clone(), true
}

// Wait blocks until every scheduled computer turn has run or been dropped.
func (e *Engine) Wait() {
	e.pending.Wait()
}
