package board

import "sort"

// Stack records the stacking value of every tile on a board.
type Stack struct {
	session *Session
	z       map[string]int
}

func NewStack(session *Session) *Stack {
	return &Stack{
		session: session,
		z:       make(map[string]int),
	}
}

// Add puts a tile on top of the stack. Adding a known id raises it.
func (s *Stack) Add(id string) int {
	return s.Raise(id)
}

// Raise moves a tile above every other tile and returns its new value.
func (s *Stack) Raise(id string) int {
	z := s.session.NextZ()
	s.z[id] = z
	return z
}

// Z returns the stacking value of a tile.
func (s *Stack) Z(id string) (int, bool) {
	z, ok := s.z[id]
	return z, ok
}

// Remove forgets a tile.
func (s *Stack) Remove(id string) {
	delete(s.z, id)
}

// Len returns the number of tiles on the stack.
func (s *Stack) Len() int {
	return len(s.z)
}

// Order lists tile ids from bottom to top.
func (s *Stack) Order() []string {
	ids := make([]string, 0, len(s.z))
	for id := range s.z {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.z[ids[i]] < s.z[ids[j]]
	})
	return ids
}

// Top returns the id of the topmost tile, or "" for an empty stack.
func (s *Stack) Top() string {
	top, topZ := "", 0
	for id, z := range s.z {
		if z > topZ {
			top, topZ = id, z
		}
	}
	return top
}
