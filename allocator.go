package vma

/*
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// Allocator is the central VMA object. One allocator serves one VkDevice;
// all allocations, pools and defragmentation runs hang off it. The zero
// value is not usable, construct with NewAllocator.
type Allocator struct {
	h C.VmaAllocator
}

// AllocatorCreateInfo configures NewAllocator. PhysicalDevice, Device and
// Instance are required; everything else has a usable zero value.
type AllocatorCreateInfo struct {
	Flags          AllocatorCreateFlags
	PhysicalDevice PhysicalDevice
	Device         Device
	Instance       Instance

	// VulkanAPIVersion is the version the VkInstance was created with.
	// Zero means Vulkan 1.0.
	VulkanAPIVersion uint32

	// PreferredLargeHeapBlockSize is the block size for device memory
	// blocks in "large" heaps. Zero means the library default (256 MiB).
	PreferredLargeHeapBlockSize uint64
}

// NewAllocator creates an allocator for the given device.
func NewAllocator(info *AllocatorCreateInfo) (*Allocator, error) {
	cInfo := C.VmaAllocatorCreateInfo{
		flags:                       C.VmaAllocatorCreateFlags(info.Flags),
		physicalDevice:              info.PhysicalDevice.h,
		device:                      info.Device.h,
		instance:                    info.Instance.h,
		vulkanApiVersion:            C.uint32_t(info.VulkanAPIVersion),
		preferredLargeHeapBlockSize: C.VkDeviceSize(info.PreferredLargeHeapBlockSize),
	}

	var a Allocator
	if err := vkCheck(C.vmaCreateAllocator(&cInfo, &a.h)); err != nil {
		return nil, err
	}
	return &a, nil
}

// Destroy frees the allocator. All allocations and pools must be destroyed
// first. The allocator must not be used afterwards.
func (a *Allocator) Destroy() {
	C.vmaDestroyAllocator(a.h)
	a.h = nil
}

// AllocatorFromRaw wraps a raw VmaAllocator handle, for interop with code
// that created the allocator elsewhere.
func AllocatorFromRaw(raw unsafe.Pointer) *Allocator {
	return &Allocator{h: C.VmaAllocator(raw)}
}

// Raw returns the native VmaAllocator handle.
func (a *Allocator) Raw() unsafe.Pointer { return unsafe.Pointer(a.h) }

// SetCurrentFrameIndex informs the allocator of the current frame, which
// drives its internal budget bookkeeping.
func (a *Allocator) SetCurrentFrameIndex(frameIndex uint32) {
	C.vmaSetCurrentFrameIndex(a.h, C.uint32_t(frameIndex))
}

// CheckCorruption walks the margins of all allocations in the given memory
// types and verifies their guard patterns. Only meaningful when the library
// was built with corruption detection enabled.
func (a *Allocator) CheckCorruption(memoryTypeBits uint32) error {
	return vkCheck(C.vmaCheckCorruption(a.h, C.uint32_t(memoryTypeBits)))
}

// FindMemoryTypeIndex picks a memory type for an allocation that would be
// made with the given create info, out of the types memoryTypeBits allows.
func (a *Allocator) FindMemoryTypeIndex(memoryTypeBits uint32, info *AllocationCreateInfo) (uint32, error) {
	cInfo := info.toC()
	var index C.uint32_t
	if err := vkCheck(C.vmaFindMemoryTypeIndex(a.h, C.uint32_t(memoryTypeBits), &cInfo, &index)); err != nil {
		return 0, err
	}
	return uint32(index), nil
}
