package gocode

import (
	"strings"
	"unicode"

	"github.com/golang-cz/textcase"

	"github.com/vma-go/vma/vmagen/ir"
)

// brandPrefix is the namespace prefix every binding-relevant type in the
// header carries.
const brandPrefix = "Vma"

// sentinelMarker tags the synthetic "maximum enum value" enumerators the
// header adds to force a 32-bit representation. They carry no meaning and
// are never emitted.
const sentinelMarker = "MAX_ENUM"

// typeName derives the Go type name for a configured enum. An explicit
// rename wins; otherwise the brand prefix is stripped, and bitmask types
// trade their "FlagBits" suffix for "Flags".
func typeName(cfg ir.EnumConfig) string {
	if cfg.Rename != "" {
		return cfg.Rename
	}
	name := strings.TrimPrefix(cfg.Name, brandPrefix)
	if cfg.IsFlags {
		name = strings.ReplaceAll(name, "FlagBits", "Flags")
	}
	return name
}

// constPrefix is what emitted const names start with. Bitmask const names
// drop the trailing "Flags" so they read like the set members they are
// (AllocationCreateMapped, not AllocationCreateFlagsMapped).
func constPrefix(cfg ir.EnumConfig) string {
	name := typeName(cfg)
	if cfg.IsFlags {
		name = strings.TrimSuffix(name, "Flags")
	}
	return name
}

// variantFragment strips the configured prefix from a declared variant
// name. If the stripped text would begin with a digit, the prefix minus its
// final separator character is stripped instead, leaving the separator on
// the fragment so it stays identifier-safe on its own. Bitmask fragments
// additionally lose every "_BIT" tag. Returns false when the declared name
// does not carry the prefix at all.
func variantFragment(cfg ir.EnumConfig, declared string) (string, bool) {
	fragment, ok := strings.CutPrefix(declared, cfg.Prefix)
	if !ok {
		return "", false
	}
	if fragment != "" && cfg.Prefix != "" && unicode.IsDigit(rune(fragment[0])) {
		fragment = strings.TrimPrefix(declared, cfg.Prefix[:len(cfg.Prefix)-1])
	}
	if cfg.IsFlags {
		fragment = strings.ReplaceAll(fragment, "_BIT", "")
	}
	return fragment, true
}

// isSentinel reports whether a declared variant is a width-forcing
// placeholder rather than a real value.
func isSentinel(declared string) bool {
	return strings.Contains(declared, sentinelMarker)
}

// pascalFragment converts a stripped SCREAMING_SNAKE fragment into the
// PascalCase piece appended to the const prefix. Leading digits are kept
// verbatim; the const prefix in front of them keeps the full identifier
// valid.
func pascalFragment(fragment string) string {
	fragment = strings.Trim(fragment, "_")
	if fragment == "" {
		return ""
	}
	i := 0
	for i < len(fragment) && unicode.IsDigit(rune(fragment[i])) {
		i++
	}
	digits := fragment[:i]
	rest := strings.Trim(fragment[i:], "_")
	if rest == "" {
		return digits
	}
	return digits + textcase.PascalCase(rest)
}

// lowerFirst downcases the first rune, for unexported helper names derived
// from a type name.
func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
