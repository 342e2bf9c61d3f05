package vmagen

import (
	"context"
	"strings"
	"testing"

	"github.com/vma-go/vma/vmagen/ir"
	"github.com/vma-go/vma/vmagen/sink"
)

// sampleCollection mimics a scan of a trimmed-down header: one plain enum,
// one bitmask, and one enum no config entry covers.
func sampleCollection() *ir.EnumCollection {
	coll := ir.NewEnumCollection()

	coll.Add("VmaMemoryUsage", "VMA_MEMORY_USAGE_UNKNOWN", 0)
	coll.Add("VmaMemoryUsage", "VMA_MEMORY_USAGE_GPU_ONLY", 1)
	coll.Add("VmaMemoryUsage", "VMA_MEMORY_USAGE_MAX_ENUM", 0x7FFFFFFF)

	coll.Add("VmaPoolCreateFlagBits", "VMA_POOL_CREATE_IGNORE_BUFFER_IMAGE_GRANULARITY_BIT", 0x2)
	coll.Add("VmaPoolCreateFlagBits", "VMA_POOL_CREATE_LINEAR_ALGORITHM_BIT", 0x4)
	coll.Add("VmaPoolCreateFlagBits", "VMA_POOL_CREATE_ALGORITHM_MASK", 0x4)

	coll.Add("VmaUnheardOf", "VMA_UNHEARD_OF_A", 0)

	return coll
}

func TestGenerateFromCollection(t *testing.T) {
	var warnings ir.Warnings
	result, err := generateFromCollection(*applyConfigDefaults(&Config{}), sampleCollection(), &warnings)
	if err != nil {
		t.Fatalf("generateFromCollection() error = %v", err)
	}

	content, ok := result.Files["enums_gen.go"]
	if !ok {
		t.Fatalf("result has no enums_gen.go, files: %v", keys(result.Files))
	}
	got := string(content)

	for _, want := range []string{
		"// Code generated by vmagen. DO NOT EDIT.",
		"package vma",
		"type MemoryUsage int32",
		"type PoolCreateFlags uint32",
		"MemoryUsageGpuOnly",
		"PoolCreateLinearAlgorithm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(got, "UnheardOf") {
		t.Error("unconfigured enum leaked into the output")
	}

	var sawUnconfigured bool
	for _, w := range result.Warnings {
		if w.Code == ir.WarnUnconfiguredEnum && strings.Contains(w.Message, "VmaUnheardOf") {
			sawUnconfigured = true
		}
	}
	if !sawUnconfigured {
		t.Errorf("no unconfigured-enum warning for VmaUnheardOf: %v", result.Warnings)
	}
}

func TestGenerateFromCollectionOutputIsFormatted(t *testing.T) {
	var warnings ir.Warnings
	result, err := generateFromCollection(*applyConfigDefaults(&Config{}), sampleCollection(), &warnings)
	if err != nil {
		t.Fatalf("generateFromCollection() error = %v", err)
	}

	got := string(result.Files["enums_gen.go"])
	if strings.Contains(got, "\n\n\n") {
		t.Error("output contains runs of blank lines, formatting did not run")
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("output does not end with a newline")
	}
}

func TestGenerateFromCollectionHonorsConfig(t *testing.T) {
	coll := ir.NewEnumCollection()
	coll.Add("VmaMemoryUsage", "VMA_MEMORY_USAGE_UNKNOWN", 0)

	var warnings ir.Warnings
	cfg := applyConfigDefaults(&Config{PackageName: "mem", OutFile: "mem_gen.go"})
	result, err := generateFromCollection(*cfg, coll, &warnings)
	if err != nil {
		t.Fatalf("generateFromCollection() error = %v", err)
	}

	content, ok := result.Files["mem_gen.go"]
	if !ok {
		t.Fatalf("result has no mem_gen.go, files: %v", keys(result.Files))
	}
	if !strings.Contains(string(content), "package mem") {
		t.Error("output does not use the configured package name")
	}
}

func TestResultWriteTo(t *testing.T) {
	var warnings ir.Warnings
	result, err := generateFromCollection(*applyConfigDefaults(&Config{}), sampleCollection(), &warnings)
	if err != nil {
		t.Fatalf("generateFromCollection() error = %v", err)
	}

	out := sink.NewMemorySink()
	if err := result.WriteTo(context.Background(), out); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if got := out.Get("enums_gen.go"); got == nil {
		t.Error("sink has no enums_gen.go after WriteTo")
	}
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
