package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// MaxFlags is the number of flags a FlagSet can hold without touching the sign bit of an int32 mask.
const MaxFlags = 31

// FlagSet is a closed, ordered catalogue of flag names.
// The i-th declared name owns bit 1<<i. It is immutable once built.
type FlagSet struct {
	names []string
	index map[string]int
	known int
}

func NewFlagSet(names ...string) *FlagSet {
	if len(names) == 0 {
		violate(errors.Wrap(ErrFlagSet, "no flags declared"))
	}
	if len(names) > MaxFlags {
		violate(errors.Wrapf(ErrFlagSet, "%d flags declared, at most %d fit in a mask", len(names), MaxFlags))
	}

	fs := &FlagSet{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			violate(errors.Wrapf(ErrFlagSet, "flag %d has no name", i))
		}
		if prev, ok := fs.index[name]; ok {
			violate(errors.Wrapf(ErrFlagSet, "flag %q declared at %d and %d", name, prev, i))
		}

		fs.names[i] = name
		fs.index[name] = i
		fs.known |= 1 << i
	}

	return fs
}

func (fs *FlagSet) Len() int { return len(fs.names) }

// Bit returns the single-bit value of the i-th flag.
func (fs *FlagSet) Bit(i int) int {
	if i < 0 || i >= len(fs.names) {
		violate(errors.Wrapf(ErrUnknownBits, "flag index %d outside [0,%d)", i, len(fs.names)))
	}
	return 1 << i
}

func (fs *FlagSet) Name(i int) string {
	if i < 0 || i >= len(fs.names) {
		return fmt.Sprintf("Flag(%d)", i)
	}
	return fs.names[i]
}

// Lookup returns the index of the named flag.
func (fs *FlagSet) Lookup(name string) (int, bool) {
	i, ok := fs.index[name]
	return i, ok
}

// KnownMask is the OR of every declared bit.
func (fs *FlagSet) KnownMask() int { return fs.known }

// Mask ORs the bits of the given flag indices.
func (fs *FlagSet) Mask(ids ...int) int {
	mask := 0
	for _, i := range ids {
		mask |= fs.Bit(i)
	}
	return mask
}

func (fs *FlagSet) IsSet(mask, i int) bool {
	return IsSet(mask, fs.Bit(i))
}

// Validate panics when mask carries bits outside the catalogue.
func (fs *FlagSet) Validate(mask int) {
	if stray := mask &^ fs.known; stray != 0 {
		violate(errors.Wrapf(ErrUnknownBits, "0x%x outside known mask 0x%x", stray, fs.known))
	}
}

// Format renders mask as "A|B". Bits outside the catalogue are appended in hex.
func (fs *FlagSet) Format(mask int) string {
	if mask == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, name := range fs.names {
		if mask&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
	}

	if stray := mask &^ fs.known; stray != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "0x%x", stray)
	}

	return sb.String()
}

func IsSet(mask, bits int) bool {
	return mask&bits != 0
}
