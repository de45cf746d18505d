package agent

// Select picks the agent a new user message is routed to: the first idle
// agent in registry declaration order, or DefaultType if none is idle.
// Deterministic for a given snapshot; never blocks.
func Select(s *Set) Type {
	for _, a := range s.All() {
		if a.Status == StatusIdle {
			return a.Type
		}
	}
	return DefaultType
}
