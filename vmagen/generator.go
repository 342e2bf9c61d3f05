// Package vmagen generates the Go enum wrappers for the Vulkan Memory
// Allocator header. It scans vk_mem_alloc.h with libclang, classifies the
// enums it finds against a hand-maintained table, and emits a single
// gofmt-clean source file of typed constants and bitmask sets.
package vmagen

import (
	"context"
	"fmt"

	"golang.org/x/tools/imports"

	"github.com/vma-go/vma/vmagen/gocode"
	"github.com/vma-go/vma/vmagen/ir"
	"github.com/vma-go/vma/vmagen/scan"
	"github.com/vma-go/vma/vmagen/sink"
)

// Result holds the generated files and the warnings produced along the way.
// Warnings never fail a run; callers decide how loudly to surface them.
type Result struct {
	// Files maps sink paths to formatted file content.
	Files map[string][]byte

	// Warnings in the order they were recorded.
	Warnings []ir.Warning
}

// WriteTo sends every generated file to the sink.
func (r *Result) WriteTo(ctx context.Context, out sink.OutputSink) error {
	for path, content := range r.Files {
		if err := out.WriteFile(ctx, path, content); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// Generate runs the full pipeline: resolve the header, scan it, and emit
// the wrapper file. The result is returned in memory; use Result.WriteTo to
// land it on disk.
func Generate(cfg Config) (*Result, error) {
	cfg = *applyConfigDefaults(&cfg)

	header, err := resolveHeader(&cfg)
	if err != nil {
		return nil, err
	}

	coll := ir.NewEnumCollection()
	var warnings ir.Warnings

	s := &scan.Scanner{Header: header, Args: cfg.ClangArgs}
	if err := s.Scan(coll, &warnings); err != nil {
		return nil, fmt.Errorf("failed to scan header: %w", err)
	}

	return generateFromCollection(cfg, coll, &warnings)
}

// generateFromCollection turns scanned enums into the generated file. Split
// from Generate so the classify and emit stages are testable without
// libclang.
func generateFromCollection(cfg Config, coll *ir.EnumCollection, warnings *ir.Warnings) (*Result, error) {
	var extra []ir.EnumConfig
	if cfg.ConfigFile != "" {
		var err error
		extra, err = loadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	table := buildConfigTable(extra, warnings)

	emitter := gocode.NewEmitter(gocode.Options{
		PackageName: cfg.PackageName,
		Include:     cfg.Include,
	}, warnings)

	for _, set := range coll.Enums() {
		enumCfg, ok := table[set.Name]
		if !ok {
			warnings.Addf(ir.WarnUnconfiguredEnum,
				"enum %s has no config entry, skipping", set.Name)
			continue
		}
		emitter.EmitEnum(enumCfg, set)
	}

	// imports.Process both gofmts the output and prunes imports the emitted
	// enum mix does not need.
	formatted, err := imports.Process(cfg.OutFile, emitter.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generated code does not format: %w", err)
	}

	return &Result{
		Files:    map[string][]byte{cfg.OutFile: formatted},
		Warnings: warnings.All(),
	}, nil
}
