package route

// Route is a screen identity plus an optional context that disambiguates
// screens reachable from more than one parent. Routes compare with ==.
type Route struct {
	Block   Block
	Context Block
}

// New returns a route without context.
func New(b Block) Route {
	return Route{Block: b}
}

// WithContext returns a route carrying the parent that opened it.
func WithContext(b, ctx Block) Route {
	return Route{Block: b, Context: ctx}
}

// HasContext reports whether the route carries a parent context.
func (r Route) HasContext() bool {
	return r.Context != None
}

func (r Route) String() string {
	if r.HasContext() {
		return r.Block.String() + "@" + r.Context.String()
	}
	return r.Block.String()
}

// Set is an unordered group of blocks owned by one handler.
type Set map[Block]struct{}

// NewSet builds a Set from the given blocks.
func NewSet(blocks ...Block) Set {
	s := make(Set, len(blocks))
	for _, b := range blocks {
		s[b] = struct{}{}
	}
	return s
}

// Contains reports whether b belongs to the set.
func (s Set) Contains(b Block) bool {
	_, ok := s[b]
	return ok
}
