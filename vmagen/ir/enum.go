// Package ir holds the data model shared by the scanner, classifier and
// emitter: raw enum variants as declared in the C header, the ordered
// collection they are gathered into, and the per-enum configuration table
// entries that drive emission.
package ir

import "sync"

// EnumVariant is one enumerator as declared in the header: the original C
// name and its integer value.
type EnumVariant struct {
	// Name is the declared C name, e.g. "VMA_MEMORY_USAGE_GPU_ONLY".
	Name string

	// Value is the enumerator's integer value.
	Value int64
}

// EnumConfig describes how one native enum type is turned into a Go type.
// The table of configs is hand-maintained; enums without an entry are
// skipped with a warning.
type EnumConfig struct {
	// Name is the native type name, e.g. "VmaMemoryUsage". Lookup key.
	Name string `yaml:"name"`

	// Rename overrides the default name transform (strip the "Vma" brand
	// prefix, and for flags replace "FlagBits" with "Flags"). Empty means
	// use the default.
	Rename string `yaml:"rename"`

	// Prefix is stripped from the front of every variant name,
	// e.g. "VMA_MEMORY_USAGE_".
	Prefix string `yaml:"prefix"`

	// IsFlags marks bitmask types. Flags get an unsigned representation,
	// set operations, and "_BIT" removed from variant names.
	IsFlags bool `yaml:"flags"`
}

// EnumSet is one scanned enum type: its native name and the variants in
// declaration order, already deduplicated by value.
type EnumSet struct {
	Name     string
	Variants []EnumVariant
}

// EnumCollection accumulates scanned enums. The libclang visitor gives no
// threading guarantee for its callbacks, so every mutation takes the lock.
// Insertion order is preserved for both enums and variants so generation is
// deterministic across runs.
type EnumCollection struct {
	mu    sync.Mutex
	sets  map[string]*EnumSet
	order []string
}

// NewEnumCollection returns an empty collection.
func NewEnumCollection() *EnumCollection {
	return &EnumCollection{sets: make(map[string]*EnumSet)}
}

// Add records one variant under the named enum. A variant whose value was
// already recorded for that enum is dropped silently: headers alias
// enumerators, and a closed Go const set cannot carry two names for one
// value anyway.
func (c *EnumCollection) Add(enumName, variantName string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.sets[enumName]
	if !ok {
		set = &EnumSet{Name: enumName}
		c.sets[enumName] = set
		c.order = append(c.order, enumName)
	}

	for _, v := range set.Variants {
		if v.Value == value {
			return
		}
	}
	set.Variants = append(set.Variants, EnumVariant{Name: variantName, Value: value})
}

// Enums returns a snapshot of all recorded enums in first-seen order.
func (c *EnumCollection) Enums() []EnumSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]EnumSet, 0, len(c.order))
	for _, name := range c.order {
		set := c.sets[name]
		variants := make([]EnumVariant, len(set.Variants))
		copy(variants, set.Variants)
		out = append(out, EnumSet{Name: set.Name, Variants: variants})
	}
	return out
}

// Len returns the number of distinct enums recorded.
func (c *EnumCollection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}
