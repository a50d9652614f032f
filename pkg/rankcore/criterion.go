package rankcore

// Context is the read-only and mutable state a Criterion needs during
// a cascade pass: access to the arena's posting-list views (mutable,
// since Prepare may rewrite a view) and the query mapping. Unlike the
// Rust original's split Context/ContextMut, Go has no borrow checker
// to enforce the distinction, so both phases share one struct; nothing
// outside Prepare is expected to mutate the arena.
type Context struct {
	Arena   *Arena
	Mapping QueryMapping
}

// Criterion is a single ranking rule: a capability set of three
// operations rather than a base class (§9). Each concrete criterion
// is an independent value that carries its own per-document scratch
// state; criteria are never derived from one another.
type Criterion interface {
	// Name identifies the criterion for logging.
	Name() string

	// Prepare may mutate scratch state over group -- decoding
	// SimpleMatches, rewriting posting lists, computing per-document
	// aggregates. The cascade calls Prepare at most once per group, so
	// implementations that cache per-document state don't need to
	// guard against being called twice on the same document set.
	Prepare(ctx *Context, group []*RawDocument) error

	// Evaluate imposes a total order over (a, b) within a group.
	// Negative means a sorts before b, positive means after, zero
	// means equal under this criterion (though equality for bucketing
	// purposes is decided by Eq, which must refine this).
	Evaluate(ctx *Context, a, b *RawDocument) int

	// Eq reports whether a and b are equivalent under this criterion,
	// defining the buckets the next cascade step partitions into. It
	// must refine Evaluate: Eq(a,b) implies Evaluate(a,b) == 0.
	Eq(ctx *Context, a, b *RawDocument) bool
}
