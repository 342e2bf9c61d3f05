package vma

/*
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// DefragmentationInfo configures BeginDefragmentation.
type DefragmentationInfo struct {
	Flags DefragmentationFlags

	// Pool restricts the run to one custom pool. Nil means the default
	// pools.
	Pool *Pool

	// MaxBytesPerPass caps how much data one pass may move. Zero means no
	// limit.
	MaxBytesPerPass uint64

	// MaxAllocationsPerPass caps how many allocations one pass may move.
	// Zero means no limit.
	MaxAllocationsPerPass uint32
}

// DefragmentationStats summarizes a finished defragmentation run.
type DefragmentationStats struct {
	BytesMoved              uint64
	BytesFreed              uint64
	AllocationsMoved        uint32
	DeviceMemoryBlocksFreed uint32
}

// DefragmentationContext is one incremental defragmentation run. Drive it
// with BeginPass/EndPass until EndPass reports done, then call End.
type DefragmentationContext struct {
	h     C.VmaDefragmentationContext
	alloc *Allocator
}

// DefragmentationPass holds the moves the library proposes for one pass.
// The caller performs the copies, may veto individual moves, and then
// submits the pass with EndPass.
type DefragmentationPass struct {
	info C.VmaDefragmentationPassMoveInfo
	ctx  *DefragmentationContext
}

// BeginDefragmentation starts a defragmentation run.
func (a *Allocator) BeginDefragmentation(info *DefragmentationInfo) (*DefragmentationContext, error) {
	cInfo := C.VmaDefragmentationInfo{
		flags:                 C.VmaDefragmentationFlags(info.Flags),
		maxBytesPerPass:       C.VkDeviceSize(info.MaxBytesPerPass),
		maxAllocationsPerPass: C.uint32_t(info.MaxAllocationsPerPass),
	}
	if info.Pool != nil {
		cInfo.pool = info.Pool.h
	}

	ctx := &DefragmentationContext{alloc: a}
	if err := vkCheck(C.vmaBeginDefragmentation(a.h, &cInfo, &ctx.h)); err != nil {
		return nil, err
	}
	return ctx, nil
}

// BeginPass asks the library for the next batch of moves. A nil pass means
// the run has nothing left to move.
func (c *DefragmentationContext) BeginPass() (*DefragmentationPass, error) {
	pass := &DefragmentationPass{ctx: c}
	res := C.vmaBeginDefragmentationPass(c.alloc.h, c.h, &pass.info)
	if res == C.VK_SUCCESS {
		return nil, nil
	}
	if res == C.VK_INCOMPLETE {
		return pass, nil
	}
	return nil, vkCheck(res)
}

// EndPass submits the pass's moves. It reports whether the whole run is
// now complete.
func (p *DefragmentationPass) EndPass() (bool, error) {
	res := C.vmaEndDefragmentationPass(p.ctx.alloc.h, p.ctx.h, &p.info)
	if res == C.VK_SUCCESS {
		return true, nil
	}
	if res == C.VK_INCOMPLETE {
		return false, nil
	}
	return false, vkCheck(res)
}

// MoveCount is the number of proposed moves in the pass.
func (p *DefragmentationPass) MoveCount() int {
	return int(p.info.moveCount)
}

// move indexes the library-owned move array.
func (p *DefragmentationPass) move(i int) *C.VmaDefragmentationMove {
	moves := unsafe.Slice(p.info.pMoves, p.info.moveCount)
	return &moves[i]
}

// Source returns the allocation move i would relocate.
func (p *DefragmentationPass) Source(i int) *Allocation {
	return &Allocation{h: p.move(i).srcAllocation}
}

// Operation returns the current decision for move i.
func (p *DefragmentationPass) Operation(i int) DefragmentationMoveOperation {
	return DefragmentationMoveOperation(p.move(i).operation)
}

// SetOperation overrides the decision for move i. Set
// DefragmentationMoveOperationIgnore to keep the allocation in place, or
// DefragmentationMoveOperationDestroy when the caller recreated the
// resource instead of copying it.
func (p *DefragmentationPass) SetOperation(i int, op DefragmentationMoveOperation) {
	p.move(i).operation = C.VmaDefragmentationMoveOperation(op)
}

// End finishes the run and returns its statistics.
func (c *DefragmentationContext) End() DefragmentationStats {
	var out C.VmaDefragmentationStats
	C.vmaEndDefragmentation(c.alloc.h, c.h, &out)
	c.h = nil
	return DefragmentationStats{
		BytesMoved:              uint64(out.bytesMoved),
		BytesFreed:              uint64(out.bytesFreed),
		AllocationsMoved:        uint32(out.allocationsMoved),
		DeviceMemoryBlocksFreed: uint32(out.deviceMemoryBlocksFreed),
	}
}
