package source

// CallBudget caps external API calls per research session. Failed calls
// still consume budget so retry storms cannot silently exceed quota. The
// counter is adapter-instance-scoped and persists across sessions until
// Reset is called.
type CallBudget struct {
	used int
	max  int
}

// NewCallBudget creates a budget of max calls per session.
func NewCallBudget(max int) *CallBudget {
	if max <= 0 {
		max = 5
	}
	return &CallBudget{max: max}
}

// Reset zeroes the counter for a new research session.
func (b *CallBudget) Reset() {
	b.used = 0
}

// Spend records one attempt, success or failure.
func (b *CallBudget) Spend() {
	b.used++
}

// Exhausted reports whether the session maximum has been reached.
func (b *CallBudget) Exhausted() bool {
	return b.used >= b.max
}

// Used returns the number of calls spent this session.
func (b *CallBudget) Used() int {
	return b.used
}

// Max returns the per-session ceiling.
func (b *CallBudget) Max() int {
	return b.max
}
