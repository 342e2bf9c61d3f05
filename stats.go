package vma

/*
#include <vma/vk_mem_alloc.h>
*/
import "C"

// Statistics are the fast usage counters kept up to date on every
// allocation and free.
type Statistics struct {
	// BlockCount is the number of VkDeviceMemory blocks (or virtual
	// blocks' backing regions) in use.
	BlockCount uint32

	// AllocationCount is the number of live allocations.
	AllocationCount uint32

	// BlockBytes is the total size of all blocks, in bytes.
	BlockBytes uint64

	// AllocationBytes is the total size of all allocations, in bytes.
	// BlockBytes minus AllocationBytes is unused capacity.
	AllocationBytes uint64
}

func statisticsFromC(c *C.VmaStatistics) Statistics {
	return Statistics{
		BlockCount:      uint32(c.blockCount),
		AllocationCount: uint32(c.allocationCount),
		BlockBytes:      uint64(c.blockBytes),
		AllocationBytes: uint64(c.allocationBytes),
	}
}

// DetailedStatistics extends Statistics with range counters that require a
// full metadata walk to compute.
type DetailedStatistics struct {
	Statistics

	// UnusedRangeCount is the number of free ranges between allocations.
	UnusedRangeCount uint32

	AllocationSizeMin uint64
	AllocationSizeMax uint64

	UnusedRangeSizeMin uint64
	UnusedRangeSizeMax uint64
}

func detailedStatisticsFromC(c *C.VmaDetailedStatistics) DetailedStatistics {
	return DetailedStatistics{
		Statistics:         statisticsFromC(&c.statistics),
		UnusedRangeCount:   uint32(c.unusedRangeCount),
		AllocationSizeMin:  uint64(c.allocationSizeMin),
		AllocationSizeMax:  uint64(c.allocationSizeMax),
		UnusedRangeSizeMin: uint64(c.unusedRangeSizeMin),
		UnusedRangeSizeMax: uint64(c.unusedRangeSizeMax),
	}
}

// TotalStatistics breaks detailed counters down by memory type and heap.
type TotalStatistics struct {
	MemoryType [C.VK_MAX_MEMORY_TYPES]DetailedStatistics
	MemoryHeap [C.VK_MAX_MEMORY_HEAPS]DetailedStatistics
	Total      DetailedStatistics
}

// CalculateStatistics computes detailed usage statistics for the whole
// allocator. This walks every block's metadata, so it is meant for
// debugging and profiling rather than per-frame use.
func (a *Allocator) CalculateStatistics() TotalStatistics {
	var out C.VmaTotalStatistics
	C.vmaCalculateStatistics(a.h, &out)

	var stats TotalStatistics
	for i := range stats.MemoryType {
		stats.MemoryType[i] = detailedStatisticsFromC(&out.memoryType[i])
	}
	for i := range stats.MemoryHeap {
		stats.MemoryHeap[i] = detailedStatisticsFromC(&out.memoryHeap[i])
	}
	stats.Total = detailedStatisticsFromC(&out.total)
	return stats
}

// Budget is the allocator's view of one memory heap: its own usage plus
// the budget the driver reports when the memory-budget extension is
// enabled.
type Budget struct {
	Statistics Statistics

	// Usage is the heap's current usage in bytes, including allocations
	// made outside this allocator when the extension reports them.
	Usage uint64

	// Budget is how many bytes this process may use before the driver
	// starts to push back.
	Budget uint64
}

// HeapBudgets returns the current budget of every memory heap. Slots past
// the device's real heap count are zero.
func (a *Allocator) HeapBudgets() [C.VK_MAX_MEMORY_HEAPS]Budget {
	var out [C.VK_MAX_MEMORY_HEAPS]C.VmaBudget
	C.vmaGetHeapBudgets(a.h, &out[0])

	var budgets [C.VK_MAX_MEMORY_HEAPS]Budget
	for i := range budgets {
		budgets[i] = Budget{
			Statistics: statisticsFromC(&out[i].statistics),
			Usage:      uint64(out[i].usage),
			Budget:     uint64(out[i].budget),
		}
	}
	return budgets
}
