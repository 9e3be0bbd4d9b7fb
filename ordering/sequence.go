package ordering

// sequence is a mutable vertex permutation supporting the remove/reinsert
// operations the move table is built from, mirroring the original source's
// use of plain list.remove/list.insert.
type sequence struct {
	items []string
}

func newSequence(ids []string) *sequence {
	items := make([]string, len(ids))
	copy(items, ids)

	return &sequence{items: items}
}

func (s *sequence) indexOf(x string) int {
	for i, v := range s.items {
		if v == x {
			return i
		}
	}

	return -1
}

func (s *sequence) positions() map[string]int {
	pos := make(map[string]int, len(s.items))
	for i, v := range s.items {
		pos[v] = i
	}

	return pos
}

// remove deletes the first occurrence of x.
func (s *sequence) remove(x string) {
	i := s.indexOf(x)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// insertAfter removes x (if present) and reinserts it immediately after ref.
func (s *sequence) insertAfter(x, ref string) {
	s.remove(x)
	i := s.indexOf(ref)
	s.insertAt(x, i+1)
}

// insertBefore removes x (if present) and reinserts it immediately before ref.
func (s *sequence) insertBefore(x, ref string) {
	s.remove(x)
	i := s.indexOf(ref)
	s.insertAt(x, i)
}

func (s *sequence) insertAt(x string, at int) {
	if at < 0 {
		at = 0
	}
	if at > len(s.items) {
		at = len(s.items)
	}
	s.items = append(s.items, "")
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = x
}

func (s *sequence) slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)

	return out
}
