package engine

import "github.com/google/uuid"

// Memory is the computer's targeting memory. It lives only as long as the
// session that owns it.
type Memory struct {
	LastHit   *Coord
	HuntQueue []Coord
}

// Enqueue appends c to the back of the hunt queue.
func (m *Memory) Enqueue(c Coord) {
	m.HuntQueue = append(m.HuntQueue, c)
}

// Dequeue pops the front of the hunt queue.
func (m *Memory) Dequeue() (Coord, bool) {
	if len(m.HuntQueue) == 0 {
		return Coord{}, false
	}
	c := m.HuntQueue[0]
	m.HuntQueue = m.HuntQueue[1:]
	return c, true
}

func (m *Memory) RecordHit(c Coord) {
	m.LastHit = &c
}

func (m Memory) clone() Memory {
	out := Memory{}
	if m.LastHit != nil {
		c := *m.LastHit
		out.LastHit = &c
	}
	if len(m.HuntQueue) > 0 {
		out.HuntQueue = append([]Coord(nil), m.HuntQueue...)
	}
	return out
}

// Session is one game from start to restart. It exclusively owns both
// boards and the computer's memory.
type Session struct {
	ID            string
	Difficulty    Difficulty
	Phase         Phase
	PlayerBoard   Board
	ComputerBoard Board
	ShipsToPlace  int
	Memory        Memory
}

func newSession(d Difficulty) *Session {
	return &Session{
		ID:           uuid.New().String(),
		Difficulty:   d,
		Phase:        Placement,
		ShipsToPlace: FleetSize,
	}
}

func (s *Session) clone() Session {
	out := *s
	out.Memory = s.Memory.clone()
	return out
}
