package vma

import (
	"strings"
	"testing"
)

func TestMemoryUsageRoundTrip(t *testing.T) {
	for _, u := range []MemoryUsage{
		MemoryUsageUnknown,
		MemoryUsageGpuOnly,
		MemoryUsageAuto,
		MemoryUsageAutoPreferHost,
	} {
		if got := MemoryUsageFromRaw(u.Raw()); got != u {
			t.Errorf("MemoryUsageFromRaw(%v.Raw()) = %v", u, got)
		}
	}
}

func TestMemoryUsageFromRawIsTotal(t *testing.T) {
	// A value from a future library release keeps its numeric identity.
	got := MemoryUsageFromRaw(99)
	if got.Raw() != 99 {
		t.Errorf("Raw() = %d, want 99", got.Raw())
	}
	if want := "MemoryUsage(99)"; got.String() != want {
		t.Errorf("String() = %q, want %q", got.String(), want)
	}
}

func TestMemoryUsageString(t *testing.T) {
	if got := MemoryUsageGpuOnly.String(); got != "MemoryUsageGpuOnly" {
		t.Errorf("String() = %q", got)
	}
}

func TestAllocationCreateFlagsFromRawTruncates(t *testing.T) {
	known := uint32(AllocationCreateMapped | AllocationCreateWithinBudget)
	unknown := uint32(1) << 30

	got := AllocationCreateFlagsFromRaw(known | unknown)
	if got != AllocationCreateMapped|AllocationCreateWithinBudget {
		t.Errorf("FromRaw() = %v, unknown bit survived truncation", got)
	}

	// The plain conversion is the escape hatch that keeps unknown bits.
	kept := AllocationCreateFlags(known | unknown)
	if kept.Raw() != known|unknown {
		t.Errorf("plain conversion dropped bits: %#x", kept.Raw())
	}
}

func TestAllocationCreateFlagsRawLaws(t *testing.T) {
	if got := AllocationCreateFlags(0).Raw(); got != 0 {
		t.Errorf("empty set Raw() = %d, want 0", got)
	}

	a, b := AllocationCreateMapped, AllocationCreateDedicatedMemory
	if (a | b).Raw() != a.Raw()|b.Raw() {
		t.Error("union raw form differs from bitwise OR of raw forms")
	}

	// Round trip is the identity for sets of known bits.
	f := a | b | AllocationCreateStrategyMinTime
	if got := AllocationCreateFlagsFromRaw(f.Raw()); got != f {
		t.Errorf("FromRaw(Raw()) = %v, want %v", got, f)
	}
}

func TestAllocationCreateFlagsHas(t *testing.T) {
	f := AllocationCreateMapped | AllocationCreateDedicatedMemory
	if !f.Has(AllocationCreateMapped) {
		t.Error("Has(Mapped) = false")
	}
	if !f.Has(AllocationCreateMapped | AllocationCreateDedicatedMemory) {
		t.Error("Has(both) = false")
	}
	if f.Has(AllocationCreateNeverAllocate) {
		t.Error("Has(NeverAllocate) = true")
	}
	if !f.Has(0) {
		t.Error("Has(0) = false, the empty set is a subset of everything")
	}
}

func TestAllocationCreateFlagsString(t *testing.T) {
	if got := AllocationCreateFlags(0).String(); got != "0" {
		t.Errorf("String() = %q, want \"0\"", got)
	}

	got := (AllocationCreateMapped | AllocationCreateWithinBudget).String()
	for _, part := range []string{"Mapped", "WithinBudget"} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, missing %q", got, part)
		}
	}

	// Unknown bits print numerically rather than vanishing.
	withUnknown := AllocationCreateMapped | AllocationCreateFlags(1<<30)
	if got := withUnknown.String(); !strings.Contains(got, "0x40000000") {
		t.Errorf("String() = %q, unknown bit not shown", got)
	}
}

func TestStrategyMaskCoversStrategies(t *testing.T) {
	strategies := AllocationCreateStrategyMinMemory |
		AllocationCreateStrategyMinTime |
		AllocationCreateStrategyMinOffset
	if !AllocationCreateStrategyMask.Has(strategies) {
		t.Errorf("StrategyMask = %#x does not cover the strategy bits %#x",
			AllocationCreateStrategyMask.Raw(), strategies.Raw())
	}
}

func TestDefragmentationMoveOperationValues(t *testing.T) {
	if DefragmentationMoveOperationCopy.Raw() != 0 {
		t.Errorf("Copy = %d, want 0", DefragmentationMoveOperationCopy.Raw())
	}
	if DefragmentationMoveOperationIgnore.Raw() != 1 {
		t.Errorf("Ignore = %d, want 1", DefragmentationMoveOperationIgnore.Raw())
	}
	if DefragmentationMoveOperationDestroy.Raw() != 2 {
		t.Errorf("Destroy = %d, want 2", DefragmentationMoveOperationDestroy.Raw())
	}
}

func TestVirtualAllocationCreateFlagsMirrorAllocationStrategies(t *testing.T) {
	// The virtual-block strategy bits alias the allocation ones in the
	// header; the generated wrappers must agree.
	if VirtualAllocationCreateStrategyMinMemory.Raw() != AllocationCreateStrategyMinMemory.Raw() {
		t.Error("StrategyMinMemory values diverge")
	}
	if VirtualAllocationCreateUpperAddress.Raw() != AllocationCreateUpperAddress.Raw() {
		t.Error("UpperAddress values diverge")
	}
}
