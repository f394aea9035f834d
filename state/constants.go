package state

const (
	// RemovalSentinel is the reserved cost value in a change feed that means
	// "remove this edge". It is never a valid operational cost.
	RemovalSentinel = -999

	// Inf marks a destination with no known path.
	Inf = int(^uint(0) >> 1)
)
