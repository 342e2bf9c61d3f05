package vma

/*
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// VirtualBlock is VMA's allocation algorithm detached from real memory: it
// manages offsets inside a region of any meaning, GPU or not. Useful for
// sub-allocating a buffer, and for exercising the allocator without a
// Vulkan device.
type VirtualBlock struct {
	h C.VmaVirtualBlock
}

// VirtualAllocation identifies one allocation inside a VirtualBlock.
type VirtualAllocation struct {
	h C.VmaVirtualAllocation
}

// Raw returns the native VmaVirtualAllocation handle.
func (va VirtualAllocation) Raw() unsafe.Pointer { return unsafe.Pointer(va.h) }

// VirtualBlockCreateInfo configures NewVirtualBlock.
type VirtualBlockCreateInfo struct {
	// Size of the managed region, in bytes. Required.
	Size uint64

	Flags VirtualBlockCreateFlags
}

// VirtualAllocationCreateInfo describes one allocation request.
type VirtualAllocationCreateInfo struct {
	// Size of the allocation, in bytes. Required.
	Size uint64

	// Alignment of the allocation's offset. Zero means 1.
	Alignment uint64

	Flags VirtualAllocationCreateFlags

	// UserData attached to the allocation, readable back through
	// AllocationInfo.
	UserData unsafe.Pointer
}

// VirtualAllocationInfo is a snapshot of one virtual allocation.
type VirtualAllocationInfo struct {
	Offset   uint64
	Size     uint64
	UserData unsafe.Pointer
}

// NewVirtualBlock creates a virtual block managing info.Size bytes.
func NewVirtualBlock(info *VirtualBlockCreateInfo) (*VirtualBlock, error) {
	cInfo := C.VmaVirtualBlockCreateInfo{
		size:  C.VkDeviceSize(info.Size),
		flags: C.VmaVirtualBlockCreateFlags(info.Flags),
	}

	var vb VirtualBlock
	if err := vkCheck(C.vmaCreateVirtualBlock(&cInfo, &vb.h)); err != nil {
		return nil, err
	}
	return &vb, nil
}

// Destroy frees the block. The block must be empty, or cleared first.
func (vb *VirtualBlock) Destroy() {
	C.vmaDestroyVirtualBlock(vb.h)
	vb.h = nil
}

// IsEmpty reports whether the block has no live allocations.
func (vb *VirtualBlock) IsEmpty() bool {
	return C.vmaIsVirtualBlockEmpty(vb.h) != 0
}

// Allocate carves an allocation out of the block and returns its handle
// and offset. Fails with VK_ERROR_OUT_OF_DEVICE_MEMORY when the block has
// no room left.
func (vb *VirtualBlock) Allocate(info *VirtualAllocationCreateInfo) (VirtualAllocation, uint64, error) {
	cInfo := C.VmaVirtualAllocationCreateInfo{
		size:      C.VkDeviceSize(info.Size),
		alignment: C.VkDeviceSize(info.Alignment),
		flags:     C.VmaVirtualAllocationCreateFlags(info.Flags),
		pUserData: info.UserData,
	}

	var (
		alloc  C.VmaVirtualAllocation
		offset C.VkDeviceSize
	)
	if err := vkCheck(C.vmaVirtualAllocate(vb.h, &cInfo, &alloc, &offset)); err != nil {
		return VirtualAllocation{}, 0, err
	}
	return VirtualAllocation{h: alloc}, uint64(offset), nil
}

// Free returns an allocation's range to the block.
func (vb *VirtualBlock) Free(alloc VirtualAllocation) {
	C.vmaVirtualFree(vb.h, alloc.h)
}

// Clear frees all allocations in the block at once.
func (vb *VirtualBlock) Clear() {
	C.vmaClearVirtualBlock(vb.h)
}

// AllocationInfo returns the offset, size and user data of an allocation.
func (vb *VirtualBlock) AllocationInfo(alloc VirtualAllocation) VirtualAllocationInfo {
	var out C.VmaVirtualAllocationInfo
	C.vmaGetVirtualAllocationInfo(vb.h, alloc.h, &out)
	return VirtualAllocationInfo{
		Offset:   uint64(out.offset),
		Size:     uint64(out.size),
		UserData: out.pUserData,
	}
}

// SetAllocationUserData replaces the user data attached to an allocation.
func (vb *VirtualBlock) SetAllocationUserData(alloc VirtualAllocation, userData unsafe.Pointer) {
	C.vmaSetVirtualAllocationUserData(vb.h, alloc.h, userData)
}

// Statistics returns the block's current usage counters.
func (vb *VirtualBlock) Statistics() Statistics {
	var out C.VmaStatistics
	C.vmaGetVirtualBlockStatistics(vb.h, &out)
	return statisticsFromC(&out)
}

// CalculateStatistics walks the block's metadata for the detailed, slower
// counters.
func (vb *VirtualBlock) CalculateStatistics() DetailedStatistics {
	var out C.VmaDetailedStatistics
	C.vmaCalculateVirtualBlockStatistics(vb.h, &out)
	return detailedStatisticsFromC(&out)
}
