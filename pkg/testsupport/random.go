package testsupport

// Scripted is a deterministic random source for tests. Each draw returns the
// next scripted value reduced modulo n; the script repeats once exhausted and
// an empty script always yields 0.
type Scripted struct {
	values []int
	pos    int
	calls  []int
}

// NewScripted builds a Scripted source returning values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: append([]int(nil), values...)}
}

// IntN returns the next scripted value in [0, n).
func (s *Scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	value := s.values[s.pos%len(s.values)]
	s.pos++
	if value < 0 {
		value = -value
	}
	return value % n
}

// Calls returns the n argument of every draw made so far.
func (s *Scripted) Calls() []int {
	return append([]int(nil), s.calls...)
}
