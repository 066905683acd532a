package domain

// Classification is the severity summary derived from a change list.
// Breaking preserves the registry's ordering of FAILURE changes.
type Classification struct {
	Breaking      []Change
	Total         int
	BreakingCount int
}

// Safe reports whether the change set has nothing blocking. WARNING and
// NOTICE changes never affect this, only presentation.
func (c Classification) Safe() bool { return c.BreakingCount == 0 }

// Classify derives severity aggregates from a change list. The input is
// treated as an immutable snapshot; only summaries are derived from it.
func Classify(changes []Change) Classification {
	c := Classification{Total: len(changes)}
	for _, ch := range changes {
		if ch.Type.Blocking() {
			c.Breaking = append(c.Breaking, ch)
		}
	}
	c.BreakingCount = len(c.Breaking)
	return c
}
