package vmagen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/vma-go/vma/vmagen/ir"
)

// Config holds the configuration for a generation run.
type Config struct {
	// SDKPath is the root of a Vulkan SDK installation. Empty means use the
	// VULKAN_SDK environment variable.
	SDKPath string

	// HeaderPath points directly at vk_mem_alloc.h. When set it wins over
	// SDK-based resolution.
	HeaderPath string

	// OutFile is the sink path of the generated file. Default "enums_gen.go".
	OutFile string

	// PackageName of the generated file. Default "vma".
	PackageName string

	// Include is the header path placed in the generated cgo preamble.
	// Default "vma/vk_mem_alloc.h".
	Include string

	// ConfigFile optionally names a YAML file whose enum entries are applied
	// on top of the builtin table.
	ConfigFile string

	// ClangArgs are extra compiler arguments for the header parse, e.g.
	// additional -I flags.
	ClangArgs []string
}

var (
	// ErrSDKNotSet reports that neither HeaderPath, SDKPath nor VULKAN_SDK
	// located the header.
	ErrSDKNotSet = errors.New("vulkan SDK location not set (set VULKAN_SDK or pass a header path)")

	// ErrHeaderNotFound reports that the resolved header does not exist.
	ErrHeaderNotFound = errors.New("vk_mem_alloc.h not found")
)

// builtinConfigs is the hand-maintained classification table. Enums the
// scanner finds that have no entry here (and none in the overlay file) are
// skipped with a warning, so a new header release degrades loudly instead
// of miscompiling.
var builtinConfigs = []ir.EnumConfig{
	{Name: "VmaMemoryUsage", Prefix: "VMA_MEMORY_USAGE_"},
	{Name: "VmaDefragmentationMoveOperation", Prefix: "VMA_DEFRAGMENTATION_MOVE_OPERATION_"},
	{Name: "VmaAllocationCreateFlagBits", Prefix: "VMA_ALLOCATION_CREATE_", IsFlags: true},
	{Name: "VmaAllocatorCreateFlagBits", Prefix: "VMA_ALLOCATOR_CREATE_", IsFlags: true},
	{Name: "VmaPoolCreateFlagBits", Prefix: "VMA_POOL_CREATE_", IsFlags: true},
	{Name: "VmaDefragmentationFlagBits", Prefix: "VMA_DEFRAGMENTATION_FLAG_", IsFlags: true},
	{Name: "VmaVirtualBlockCreateFlagBits", Prefix: "VMA_VIRTUAL_BLOCK_CREATE_", IsFlags: true},
	{Name: "VmaVirtualAllocationCreateFlagBits", Prefix: "VMA_VIRTUAL_ALLOCATION_CREATE_", IsFlags: true},
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg

	if result.SDKPath == "" {
		result.SDKPath = os.Getenv("VULKAN_SDK")
	}
	if result.OutFile == "" {
		result.OutFile = "enums_gen.go"
	}
	if result.PackageName == "" {
		result.PackageName = "vma"
	}
	if result.Include == "" {
		result.Include = "vma/vk_mem_alloc.h"
	}

	return &result
}

// resolveHeader locates vk_mem_alloc.h. An explicit HeaderPath wins;
// otherwise the SDK layout is probed, covering both the Windows-style
// Include/ and Unix-style include/ trees.
func resolveHeader(cfg *Config) (string, error) {
	if cfg.HeaderPath != "" {
		if _, err := os.Stat(cfg.HeaderPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrHeaderNotFound, cfg.HeaderPath)
		}
		return cfg.HeaderPath, nil
	}
	if cfg.SDKPath == "" {
		return "", ErrSDKNotSet
	}
	candidates := []string{
		filepath.Join(cfg.SDKPath, "Include", "vma", "vk_mem_alloc.h"),
		filepath.Join(cfg.SDKPath, "include", "vma", "vk_mem_alloc.h"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w under %s", ErrHeaderNotFound, cfg.SDKPath)
}

// configFile is the YAML overlay format: a list of enum entries matching
// the builtin table's shape.
type configFile struct {
	Enums []ir.EnumConfig `yaml:"enums"`
}

// loadConfigFile reads an overlay config. A missing ConfigFile field means
// no overlay.
func loadConfigFile(path string) ([]ir.EnumConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, e := range cf.Enums {
		if e.Name == "" {
			return nil, fmt.Errorf("config file %s: enum entry without a name", path)
		}
	}
	return cf.Enums, nil
}

// buildConfigTable merges the builtin table with overlay entries. A name
// appearing twice keeps the later entry and reports the collision, matching
// how overlays are expected to override builtins.
func buildConfigTable(extra []ir.EnumConfig, warnings *ir.Warnings) map[string]ir.EnumConfig {
	table := make(map[string]ir.EnumConfig, len(builtinConfigs)+len(extra))
	for _, cfg := range builtinConfigs {
		table[cfg.Name] = cfg
	}
	for _, cfg := range extra {
		if _, exists := table[cfg.Name]; exists {
			warnings.Addf(ir.WarnDuplicateConfig,
				"duplicate config entry for %s, keeping the later one", cfg.Name)
		}
		table[cfg.Name] = cfg
	}
	return table
}
