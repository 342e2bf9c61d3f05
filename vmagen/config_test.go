package vmagen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vma-go/vma/vmagen/ir"
)

func TestApplyConfigDefaults(t *testing.T) {
	t.Setenv("VULKAN_SDK", "/opt/vulkan-sdk")

	got := applyConfigDefaults(&Config{})
	if got.SDKPath != "/opt/vulkan-sdk" {
		t.Errorf("SDKPath = %q, want value of VULKAN_SDK", got.SDKPath)
	}
	if got.OutFile != "enums_gen.go" {
		t.Errorf("OutFile = %q", got.OutFile)
	}
	if got.PackageName != "vma" {
		t.Errorf("PackageName = %q", got.PackageName)
	}
	if got.Include != "vma/vk_mem_alloc.h" {
		t.Errorf("Include = %q", got.Include)
	}

	explicit := applyConfigDefaults(&Config{SDKPath: "/elsewhere", PackageName: "mem"})
	if explicit.SDKPath != "/elsewhere" || explicit.PackageName != "mem" {
		t.Errorf("explicit values overridden: %+v", explicit)
	}
}

func TestResolveHeader(t *testing.T) {
	writeHeader := func(t *testing.T, dir ...string) string {
		t.Helper()
		path := filepath.Join(dir...)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("// header"), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("explicit header path wins", func(t *testing.T) {
		path := writeHeader(t, t.TempDir(), "vk_mem_alloc.h")
		got, err := resolveHeader(&Config{HeaderPath: path, SDKPath: "/nonexistent"})
		if err != nil {
			t.Fatalf("resolveHeader() error = %v", err)
		}
		if got != path {
			t.Errorf("resolveHeader() = %q, want %q", got, path)
		}
	})

	t.Run("explicit header path must exist", func(t *testing.T) {
		_, err := resolveHeader(&Config{HeaderPath: "/nonexistent/vk_mem_alloc.h"})
		if !errors.Is(err, ErrHeaderNotFound) {
			t.Errorf("resolveHeader() error = %v, want ErrHeaderNotFound", err)
		}
	})

	t.Run("windows style SDK layout", func(t *testing.T) {
		sdk := t.TempDir()
		want := writeHeader(t, sdk, "Include", "vma", "vk_mem_alloc.h")
		got, err := resolveHeader(&Config{SDKPath: sdk})
		if err != nil {
			t.Fatalf("resolveHeader() error = %v", err)
		}
		if got != want {
			t.Errorf("resolveHeader() = %q, want %q", got, want)
		}
	})

	t.Run("unix style SDK layout", func(t *testing.T) {
		sdk := t.TempDir()
		want := writeHeader(t, sdk, "include", "vma", "vk_mem_alloc.h")
		got, err := resolveHeader(&Config{SDKPath: sdk})
		if err != nil {
			t.Fatalf("resolveHeader() error = %v", err)
		}
		if got != want {
			t.Errorf("resolveHeader() = %q, want %q", got, want)
		}
	})

	t.Run("no SDK configured", func(t *testing.T) {
		_, err := resolveHeader(&Config{})
		if !errors.Is(err, ErrSDKNotSet) {
			t.Errorf("resolveHeader() error = %v, want ErrSDKNotSet", err)
		}
	})

	t.Run("SDK without the header", func(t *testing.T) {
		_, err := resolveHeader(&Config{SDKPath: t.TempDir()})
		if !errors.Is(err, ErrHeaderNotFound) {
			t.Errorf("resolveHeader() error = %v, want ErrHeaderNotFound", err)
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("valid overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vmagen.yaml")
		content := `enums:
  - name: VmaMemoryUsage
    rename: Usage
    prefix: VMA_MEMORY_USAGE_
  - name: VmaCustomFlagBits
    prefix: VMA_CUSTOM_
    flags: true
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := loadConfigFile(path)
		if err != nil {
			t.Fatalf("loadConfigFile() error = %v", err)
		}
		want := []ir.EnumConfig{
			{Name: "VmaMemoryUsage", Rename: "Usage", Prefix: "VMA_MEMORY_USAGE_"},
			{Name: "VmaCustomFlagBits", Prefix: "VMA_CUSTOM_", IsFlags: true},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d entries, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("entry without a name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vmagen.yaml")
		if err := os.WriteFile(path, []byte("enums:\n  - prefix: VMA_X_\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := loadConfigFile(path); err == nil {
			t.Fatal("loadConfigFile() accepted an entry without a name")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("loadConfigFile() succeeded on a missing file")
		}
	})
}

func TestBuildConfigTable(t *testing.T) {
	t.Run("builtins cover the full VMA surface", func(t *testing.T) {
		var warnings ir.Warnings
		table := buildConfigTable(nil, &warnings)

		for _, name := range []string{
			"VmaMemoryUsage",
			"VmaDefragmentationMoveOperation",
			"VmaAllocationCreateFlagBits",
			"VmaAllocatorCreateFlagBits",
			"VmaPoolCreateFlagBits",
			"VmaDefragmentationFlagBits",
			"VmaVirtualBlockCreateFlagBits",
			"VmaVirtualAllocationCreateFlagBits",
		} {
			if _, ok := table[name]; !ok {
				t.Errorf("builtin table missing %s", name)
			}
		}
		if len(warnings.All()) != 0 {
			t.Errorf("unexpected warnings: %v", warnings.All())
		}
	})

	t.Run("overlay overrides and warns", func(t *testing.T) {
		var warnings ir.Warnings
		table := buildConfigTable([]ir.EnumConfig{
			{Name: "VmaMemoryUsage", Rename: "Usage", Prefix: "VMA_MEMORY_USAGE_"},
		}, &warnings)

		if got := table["VmaMemoryUsage"].Rename; got != "Usage" {
			t.Errorf("overlay did not win: Rename = %q", got)
		}
		all := warnings.All()
		if len(all) != 1 || all[0].Code != ir.WarnDuplicateConfig {
			t.Errorf("warnings = %v, want one %s", all, ir.WarnDuplicateConfig)
		}
	})
}
