package edittree

import "fmt"

// Config configures an edit tree. The zero value is a valid configuration.
type Config struct {
	// MaxSize limits the number of characters a tree may hold. 0 means no limit.
	MaxSize int
	// CheckInvariants makes every mutating operation verify the tree structure
	// afterwards. A failed check panics. Meant for tests and debugging.
	CheckInvariants bool
	// TraceRotations writes every rotation to the tracer at debug level.
	TraceRotations bool
}

func (cfg Config) validate() error {
	if cfg.MaxSize < 0 {
		return fmt.Errorf("%w: max size must not be negative", ErrIllegalArguments)
	}
	return nil
}

// hasRoomFor reports whether a tree of the given size may grow by n characters.
func (cfg Config) hasRoomFor(size, n int) bool {
	return cfg.MaxSize == 0 || size+n <= cfg.MaxSize
}
