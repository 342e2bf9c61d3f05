// Package gocode renders Go wrapper definitions for classified VMA enums.
// Plain enums become closed int32-backed const sets, bitmask enums become
// uint32-backed flag sets; both round-trip to the raw native representation
// and carry a compile-time size assertion against the original C type.
package gocode

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/vma-go/vma/vmagen/ir"
)

// Options configures the emitted file.
type Options struct {
	// PackageName of the emitted file, e.g. "vma".
	PackageName string

	// Include is the header path placed in the cgo preamble,
	// e.g. "vma/vk_mem_alloc.h".
	Include string
}

// Emitter renders one generated source file. Enums are appended in the
// order EmitEnum is called; the result is raw (unformatted) Go source.
type Emitter struct {
	opts Options
	buf  bytes.Buffer
	warn *ir.Warnings
}

// NewEmitter returns an Emitter that writes the file header immediately.
// Skipped variants are reported through warnings.
func NewEmitter(opts Options, warnings *ir.Warnings) *Emitter {
	e := &Emitter{opts: opts, warn: warnings}
	if err := headerTmpl.Execute(&e.buf, opts); err != nil {
		// Templates are static; an execution failure is a programming error.
		panic(fmt.Sprintf("gocode: header template: %v", err))
	}
	return e
}

// EmitEnum renders one wrapper definition for a classified enum.
func (e *Emitter) EmitEnum(cfg ir.EnumConfig, set ir.EnumSet) {
	def := e.buildDef(cfg, set)
	tmpl := plainTmpl
	if cfg.IsFlags {
		tmpl = flagsTmpl
	}
	if err := tmpl.Execute(&e.buf, def); err != nil {
		panic(fmt.Sprintf("gocode: enum template for %s: %v", cfg.Name, err))
	}
}

// Bytes returns the emitted source. Callers are expected to run it through
// a gofmt/goimports pass before writing it out.
func (e *Emitter) Bytes() []byte {
	return e.buf.Bytes()
}

type enumDef struct {
	GoName    string // e.g. "MemoryUsage", "AllocationCreateFlags"
	CName     string // e.g. "VmaMemoryUsage"
	KnownName string
	NamesVar  string
	Variants  []variantDef
}

type variantDef struct {
	ConstName string // e.g. "MemoryUsageGpuOnly"
	CName     string // e.g. "VMA_MEMORY_USAGE_GPU_ONLY"
	ShortName string // e.g. "GpuOnly", used by flag String output
	SingleBit bool
}

// buildDef applies the naming transforms and filters: sentinel exclusion,
// duplicate-value suppression in first-seen order, and prefix stripping
// with the digit-leading fallback.
func (e *Emitter) buildDef(cfg ir.EnumConfig, set ir.EnumSet) enumDef {
	goName := typeName(cfg)
	def := enumDef{
		GoName:    goName,
		CName:     cfg.Name,
		KnownName: lowerFirst(goName) + "Known",
		NamesVar:  lowerFirst(goName) + "Names",
	}

	prefix := constPrefix(cfg)
	seen := make(map[int64]bool)
	for _, v := range set.Variants {
		if isSentinel(v.Name) {
			continue
		}
		if seen[v.Value] {
			continue
		}
		fragment, ok := variantFragment(cfg, v.Name)
		if !ok {
			e.warn.Addf(ir.WarnPrefixMismatch,
				"failed to strip prefix %q from enum variant %s", cfg.Prefix, v.Name)
			continue
		}
		seen[v.Value] = true
		short := pascalFragment(fragment)
		def.Variants = append(def.Variants, variantDef{
			ConstName: prefix + short,
			CName:     v.Name,
			ShortName: short,
			SingleBit: v.Value > 0 && v.Value&(v.Value-1) == 0,
		})
	}
	return def
}

var headerTmpl = template.Must(template.New("header").Parse(`// Code generated by vmagen. DO NOT EDIT.

package {{.PackageName}}

/*
#include <{{.Include}}>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)
`))

var plainTmpl = template.Must(template.New("plain").Parse(`
// {{.GoName}} is the Go counterpart of the native {{.CName}} type.
type {{.GoName}} int32

const (
{{- range .Variants}}
	{{.ConstName}} = {{$.GoName}}(C.{{.CName}})
{{- end}}
)

// {{.GoName}}FromRaw reinterprets a raw {{.CName}} value. The conversion is
// total: values outside the named set pass through unchanged, so data from
// newer library releases is never rejected.
func {{.GoName}}FromRaw(raw int32) {{.GoName}} { return {{.GoName}}(raw) }

// Raw returns the value in the native library's representation.
func (v {{.GoName}}) Raw() int32 { return int32(v) }

func (v {{.GoName}}) String() string {
	switch v {
{{- range .Variants}}
	case {{.ConstName}}:
		return "{{.ConstName}}"
{{- end}}
	}
	return fmt.Sprintf("{{.GoName}}(%d)", int32(v))
}

var (
	_ [unsafe.Sizeof({{.GoName}}(0)) - C.sizeof_{{.CName}}]byte
	_ [C.sizeof_{{.CName}} - unsafe.Sizeof({{.GoName}}(0))]byte
)
`))

var flagsTmpl = template.Must(template.New("flags").Parse(`
// {{.GoName}} is the Go counterpart of the native {{.CName}} bitmask. The
// zero value is the empty set; combine values with |, intersect with &,
// subtract with &^.
type {{.GoName}} uint32

const (
{{- range .Variants}}
	{{.ConstName}} = {{$.GoName}}(C.{{.CName}})
{{- end}}
)

// {{.KnownName}} is the union of every bit the native library defines for
// {{.CName}}.
{{- if .Variants}}
const {{.KnownName}} = {{range $i, $v := .Variants}}{{if $i}} | {{end}}{{$v.ConstName}}{{end}}
{{- else}}
const {{.KnownName}} {{.GoName}} = 0
{{- end}}

// {{.GoName}}FromRaw converts a raw {{.CName}} value, truncating bits the
// native library does not define. Use a plain {{.GoName}} conversion to
// keep unknown bits instead.
func {{.GoName}}FromRaw(raw uint32) {{.GoName}} { return {{.GoName}}(raw) & {{.KnownName}} }

// Raw returns the set in the native library's representation.
func (f {{.GoName}}) Raw() uint32 { return uint32(f) }

// Has reports whether every bit of other is set in f.
func (f {{.GoName}}) Has(other {{.GoName}}) bool { return f&other == other }

var {{.NamesVar}} = []struct {
	bit  {{.GoName}}
	name string
}{
{{- range .Variants}}
{{- if .SingleBit}}
	{{"{"}}{{.ConstName}}, "{{.ShortName}}"{{"}"}},
{{- end}}
{{- end}}
}

func (f {{.GoName}}) String() string {
	if f == 0 {
		return "0"
	}
	var sb strings.Builder
	rest := f
	for _, e := range {{.NamesVar}} {
		if rest&e.bit == e.bit {
			if sb.Len() > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(e.name)
			rest &^= e.bit
		}
	}
	if rest != 0 {
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, "%#x", uint32(rest))
	}
	return sb.String()
}

var (
	_ [unsafe.Sizeof({{.GoName}}(0)) - C.sizeof_{{.CName}}]byte
	_ [C.sizeof_{{.CName}} - unsafe.Sizeof({{.GoName}}(0))]byte
)
`))
