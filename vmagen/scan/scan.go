// Package scan walks a C header with libclang and collects the enum
// declarations that belong to the VMA API surface.
package scan

import (
	"fmt"
	"strings"

	"github.com/go-clang/clang-v13/clang"

	"github.com/vma-go/vma/vmagen/ir"
)

// brandPrefix gates which enum types are collected. The header pulls in
// large amounts of Vulkan machinery whose enums are not ours to bind.
const brandPrefix = "Vma"

// Scanner parses one header and feeds every VMA enum it finds into an
// ir.EnumCollection.
type Scanner struct {
	// Header is the path of the header to parse.
	Header string

	// Args are extra compiler arguments, e.g. -I flags for the Vulkan SDK
	// include directory.
	Args []string
}

// Scan parses the header and records all Vma-prefixed enum variants in
// coll. Declarations from system headers and from transitively included
// files are ignored; only enums declared in the target header itself count.
// Non-fatal oddities, like an enum with no usable name, are reported
// through warnings.
func (s *Scanner) Scan(coll *ir.EnumCollection, warnings *ir.Warnings) error {
	idx := clang.NewIndex(0, 0)
	defer idx.Dispose()

	tu := idx.ParseTranslationUnit(s.Header, s.Args, nil, 0)
	if tu == (clang.TranslationUnit{}) {
		return fmt.Errorf("failed to parse %s", s.Header)
	}
	defer tu.Dispose()

	tu.TranslationUnitCursor().Visit(func(cursor, parent clang.Cursor) clang.ChildVisitResult {
		if cursor.Location().IsInSystemHeader() {
			return clang.ChildVisit_Continue
		}
		if cursor.Kind() != clang.Cursor_EnumDecl {
			// Enums in this header are declared at file scope or behind a
			// typedef, so one level of recursion is enough to reach them.
			return clang.ChildVisit_Recurse
		}
		if !declaredIn(cursor, s.Header) {
			return clang.ChildVisit_Continue
		}

		name := enumName(cursor)
		if name == "" {
			warnings.Addf(ir.WarnMissingEnumName,
				"skipping unnamed enum in %s", s.Header)
			return clang.ChildVisit_Continue
		}
		if !strings.HasPrefix(name, brandPrefix) {
			return clang.ChildVisit_Continue
		}

		cursor.Visit(func(child, _ clang.Cursor) clang.ChildVisitResult {
			if child.Kind() == clang.Cursor_EnumConstantDecl {
				coll.Add(name, child.Spelling(), child.EnumConstantDeclValue())
			}
			return clang.ChildVisit_Continue
		})
		return clang.ChildVisit_Continue
	})

	return nil
}

// enumName returns the type name of an enum declaration. Type spellings
// come back as "enum VmaMemoryUsage" for plain declarations, so the keyword
// is trimmed off.
func enumName(cursor clang.Cursor) string {
	name := cursor.Spelling()
	if name == "" {
		name = cursor.Type().Spelling()
	}
	return strings.TrimPrefix(name, "enum ")
}

// declaredIn reports whether the cursor's declaration lives in the named
// file rather than in something it includes.
func declaredIn(cursor clang.Cursor, header string) bool {
	file, _, _, _ := cursor.Location().FileLocation()
	return strings.HasSuffix(file.Name(), baseName(header))
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
