package chartbits

import "github.com/AnatoleLucet/chartbits/internal"

// Flag is anything that names a single bit of a mask, typically an enum constant.
type Flag interface {
	Bit() int
}

// Mask ORs the bits of the given flags.
func Mask[F Flag](flags ...F) int {
	mask := 0
	for _, f := range flags {
		mask |= f.Bit()
	}
	return mask
}

// IsSet reports whether any of bits is set in mask.
func IsSet(mask, bits int) bool {
	return internal.IsSet(mask, bits)
}

// FlagSet is a closed, ordered catalogue of flag names.
// The first declared flag owns bit 0, the second bit 1, and so on.
type FlagSet struct {
	set *internal.FlagSet
}

// NewFlagSet declares a catalogue. It panics on empty or duplicate names,
// or when more than 31 names are given.
func NewFlagSet(names ...string) *FlagSet {
	return &FlagSet{internal.NewFlagSet(names...)}
}

// Len returns the number of declared flags.
func (fs *FlagSet) Len() int { return fs.set.Len() }

// Bit returns 1 << i for the i-th declared flag.
func (fs *FlagSet) Bit(i int) int { return fs.set.Bit(i) }

// Name returns the declared name of the i-th flag.
func (fs *FlagSet) Name(i int) string { return fs.set.Name(i) }

// Lookup finds a flag index by name.
func (fs *FlagSet) Lookup(name string) (int, bool) { return fs.set.Lookup(name) }

// IsSet reports whether the i-th flag is set in mask.
func (fs *FlagSet) IsSet(mask, i int) bool { return fs.set.IsSet(mask, i) }

// KnownMask is the OR of every declared bit. No other bit may enter a BitState using this set.
func (fs *FlagSet) KnownMask() int { return fs.set.KnownMask() }

// Mask ORs the bits of the given flag indices.
func (fs *FlagSet) Mask(ids ...int) int { return fs.set.Mask(ids...) }

// Format renders mask with flag names, e.g. "AxisRange|AxisCanvas".
func (fs *FlagSet) Format(mask int) string { return fs.set.Format(mask) }
