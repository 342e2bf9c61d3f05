package vma

/*
#include <stdlib.h>
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// Pool is a custom memory pool. Allocations placed in a pool via
// AllocationCreateInfo.Pool draw from its blocks instead of the default
// ones, with the block size and count limits set at creation.
type Pool struct {
	h     C.VmaPool
	alloc *Allocator
}

// PoolCreateInfo configures CreatePool. MemoryTypeIndex is required; use
// Allocator.FindMemoryTypeIndex to pick one.
type PoolCreateInfo struct {
	MemoryTypeIndex uint32
	Flags           PoolCreateFlags

	// BlockSize fixes the size of each VkDeviceMemory block. Zero lets the
	// library size blocks itself.
	BlockSize uint64

	// MinBlockCount blocks are allocated up front and never freed.
	MinBlockCount uint64

	// MaxBlockCount caps the pool's growth. Zero means no limit.
	MaxBlockCount uint64

	// Priority of the pool's blocks, in [0, 1].
	Priority float32

	// MinAllocationAlignment forces an extra alignment floor on every
	// allocation in the pool. Zero means the library's own rules apply.
	MinAllocationAlignment uint64
}

// CreatePool creates a custom pool on this allocator.
func (a *Allocator) CreatePool(info *PoolCreateInfo) (*Pool, error) {
	cInfo := C.VmaPoolCreateInfo{
		memoryTypeIndex:        C.uint32_t(info.MemoryTypeIndex),
		flags:                  C.VmaPoolCreateFlags(info.Flags),
		blockSize:              C.VkDeviceSize(info.BlockSize),
		minBlockCount:          C.size_t(info.MinBlockCount),
		maxBlockCount:          C.size_t(info.MaxBlockCount),
		priority:               C.float(info.Priority),
		minAllocationAlignment: C.VkDeviceSize(info.MinAllocationAlignment),
	}

	p := &Pool{alloc: a}
	if err := vkCheck(C.vmaCreatePool(a.h, &cInfo, &p.h)); err != nil {
		return nil, err
	}
	return p, nil
}

// Destroy frees the pool. All its allocations must be freed first.
func (p *Pool) Destroy() {
	C.vmaDestroyPool(p.alloc.h, p.h)
	p.h = nil
}

// Raw returns the native VmaPool handle.
func (p *Pool) Raw() unsafe.Pointer { return unsafe.Pointer(p.h) }

// SetName attaches a debug name to the pool.
func (p *Pool) SetName(name string) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	C.vmaSetPoolName(p.alloc.h, p.h, cs)
}

// Name returns the pool's debug name, or the empty string when none is set.
func (p *Pool) Name() string {
	var cs *C.char
	C.vmaGetPoolName(p.alloc.h, p.h, &cs)
	if cs == nil {
		return ""
	}
	return C.GoString(cs)
}

// CheckCorruption verifies the guard margins of every allocation in the
// pool. Only meaningful when corruption detection was compiled in.
func (p *Pool) CheckCorruption() error {
	return vkCheck(C.vmaCheckPoolCorruption(p.alloc.h, p.h))
}
