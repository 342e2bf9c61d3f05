package vma

/*
#include <stdlib.h>
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// Allocation represents one piece of device memory handed out by an
// Allocator. It stays valid until freed through the allocator that made it.
type Allocation struct {
	h C.VmaAllocation
}

// AllocationFromRaw wraps a raw VmaAllocation handle.
func AllocationFromRaw(raw unsafe.Pointer) *Allocation {
	return &Allocation{h: C.VmaAllocation(raw)}
}

// Raw returns the native VmaAllocation handle.
func (a *Allocation) Raw() unsafe.Pointer { return unsafe.Pointer(a.h) }

// AllocationCreateInfo describes how memory for a resource should be
// chosen. The zero value asks for nothing in particular; set Usage to one
// of the MemoryUsage values to let the library pick.
type AllocationCreateInfo struct {
	Flags AllocationCreateFlags
	Usage MemoryUsage

	// RequiredFlags and PreferredFlags are VkMemoryPropertyFlags narrowing
	// the acceptable memory types.
	RequiredFlags  uint32
	PreferredFlags uint32

	// MemoryTypeBits restricts acceptable memory types to this mask. Zero
	// means no restriction.
	MemoryTypeBits uint32

	// Pool places the allocation in a custom pool instead of the default
	// ones. Flags, Usage and the type masks are then ignored.
	Pool *Pool

	// Priority in [0, 1], used when the allocator was created with the
	// ext-memory-priority extension enabled.
	Priority float32
}

func (info *AllocationCreateInfo) toC() C.VmaAllocationCreateInfo {
	out := C.VmaAllocationCreateInfo{
		flags:          C.VmaAllocationCreateFlags(info.Flags),
		usage:          C.VmaMemoryUsage(info.Usage),
		requiredFlags:  C.VkMemoryPropertyFlags(info.RequiredFlags),
		preferredFlags: C.VkMemoryPropertyFlags(info.PreferredFlags),
		memoryTypeBits: C.uint32_t(info.MemoryTypeBits),
		priority:       C.float(info.Priority),
	}
	if info.Pool != nil {
		out.pool = info.Pool.h
	}
	return out
}

// AllocationInfo is a snapshot of an allocation's current placement.
type AllocationInfo struct {
	// MemoryType is the index of the memory type the allocation lives in.
	MemoryType uint32

	// DeviceMemory is the VkDeviceMemory block backing the allocation.
	// It can change if the allocation is moved by defragmentation.
	DeviceMemory DeviceMemory

	// Offset of the allocation within DeviceMemory, in bytes.
	Offset uint64

	// Size of the allocation, in bytes.
	Size uint64

	// MappedData points at the mapped memory when the allocation is
	// persistently mapped, nil otherwise.
	MappedData unsafe.Pointer

	// UserData set via SetAllocationUserData or the create info.
	UserData unsafe.Pointer

	// Name set via SetAllocationName.
	Name string
}

func allocationInfoFromC(c *C.VmaAllocationInfo) AllocationInfo {
	info := AllocationInfo{
		MemoryType:   uint32(c.memoryType),
		DeviceMemory: DeviceMemory{h: c.deviceMemory},
		Offset:       uint64(c.offset),
		Size:         uint64(c.size),
		MappedData:   c.pMappedData,
		UserData:     c.pUserData,
	}
	if c.pName != nil {
		info.Name = C.GoString(c.pName)
	}
	return info
}

// CreateBuffer creates a VkBuffer, allocates memory for it and binds the
// two together. bufferCreateInfo must point at a valid VkBufferCreateInfo.
func (a *Allocator) CreateBuffer(bufferCreateInfo unsafe.Pointer, allocInfo *AllocationCreateInfo) (Buffer, *Allocation, AllocationInfo, error) {
	cAlloc := allocInfo.toC()
	var (
		buf   C.VkBuffer
		alloc C.VmaAllocation
		out   C.VmaAllocationInfo
	)
	res := C.vmaCreateBuffer(a.h,
		(*C.VkBufferCreateInfo)(bufferCreateInfo), &cAlloc, &buf, &alloc, &out)
	if err := vkCheck(res); err != nil {
		return Buffer{}, nil, AllocationInfo{}, err
	}
	return Buffer{h: buf}, &Allocation{h: alloc}, allocationInfoFromC(&out), nil
}

// DestroyBuffer destroys the buffer and frees its memory. Either part may
// be absent; passing a zero Buffer frees the allocation only.
func (a *Allocator) DestroyBuffer(buf Buffer, alloc *Allocation) {
	var h C.VmaAllocation
	if alloc != nil {
		h = alloc.h
	}
	C.vmaDestroyBuffer(a.h, buf.h, h)
}

// CreateImage creates a VkImage, allocates memory for it and binds the two
// together. imageCreateInfo must point at a valid VkImageCreateInfo.
func (a *Allocator) CreateImage(imageCreateInfo unsafe.Pointer, allocInfo *AllocationCreateInfo) (Image, *Allocation, AllocationInfo, error) {
	cAlloc := allocInfo.toC()
	var (
		img   C.VkImage
		alloc C.VmaAllocation
		out   C.VmaAllocationInfo
	)
	res := C.vmaCreateImage(a.h,
		(*C.VkImageCreateInfo)(imageCreateInfo), &cAlloc, &img, &alloc, &out)
	if err := vkCheck(res); err != nil {
		return Image{}, nil, AllocationInfo{}, err
	}
	return Image{h: img}, &Allocation{h: alloc}, allocationInfoFromC(&out), nil
}

// DestroyImage destroys the image and frees its memory.
func (a *Allocator) DestroyImage(img Image, alloc *Allocation) {
	var h C.VmaAllocation
	if alloc != nil {
		h = alloc.h
	}
	C.vmaDestroyImage(a.h, img.h, h)
}

// AllocateMemoryForBuffer allocates memory suitable for the given buffer.
// Binding is left to the caller, see BindBufferMemory.
func (a *Allocator) AllocateMemoryForBuffer(buf Buffer, info *AllocationCreateInfo) (*Allocation, AllocationInfo, error) {
	cInfo := info.toC()
	var (
		alloc C.VmaAllocation
		out   C.VmaAllocationInfo
	)
	if err := vkCheck(C.vmaAllocateMemoryForBuffer(a.h, buf.h, &cInfo, &alloc, &out)); err != nil {
		return nil, AllocationInfo{}, err
	}
	return &Allocation{h: alloc}, allocationInfoFromC(&out), nil
}

// AllocateMemoryForImage allocates memory suitable for the given image.
func (a *Allocator) AllocateMemoryForImage(img Image, info *AllocationCreateInfo) (*Allocation, AllocationInfo, error) {
	cInfo := info.toC()
	var (
		alloc C.VmaAllocation
		out   C.VmaAllocationInfo
	)
	if err := vkCheck(C.vmaAllocateMemoryForImage(a.h, img.h, &cInfo, &alloc, &out)); err != nil {
		return nil, AllocationInfo{}, err
	}
	return &Allocation{h: alloc}, allocationInfoFromC(&out), nil
}

// FreeMemory frees an allocation made with one of the AllocateMemory
// functions. Memory bound to a live buffer or image must not be freed.
func (a *Allocator) FreeMemory(alloc *Allocation) {
	C.vmaFreeMemory(a.h, alloc.h)
}

// BindBufferMemory binds a buffer to an allocation.
func (a *Allocator) BindBufferMemory(alloc *Allocation, buf Buffer) error {
	return vkCheck(C.vmaBindBufferMemory(a.h, alloc.h, buf.h))
}

// BindImageMemory binds an image to an allocation.
func (a *Allocator) BindImageMemory(alloc *Allocation, img Image) error {
	return vkCheck(C.vmaBindImageMemory(a.h, alloc.h, img.h))
}

// GetAllocationInfo returns the allocation's current placement.
func (a *Allocator) GetAllocationInfo(alloc *Allocation) AllocationInfo {
	var out C.VmaAllocationInfo
	C.vmaGetAllocationInfo(a.h, alloc.h, &out)
	return allocationInfoFromC(&out)
}

// SetAllocationUserData attaches an opaque pointer to the allocation,
// readable back through GetAllocationInfo.
func (a *Allocator) SetAllocationUserData(alloc *Allocation, userData unsafe.Pointer) {
	C.vmaSetAllocationUserData(a.h, alloc.h, userData)
}

// SetAllocationName attaches a debug name to the allocation. The string is
// copied by the library.
func (a *Allocator) SetAllocationName(alloc *Allocation, name string) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	C.vmaSetAllocationName(a.h, alloc.h, cs)
}

// MapMemory maps the allocation and returns a pointer to its bytes. Calls
// nest; every MapMemory needs a matching UnmapMemory.
func (a *Allocator) MapMemory(alloc *Allocation) (unsafe.Pointer, error) {
	var data unsafe.Pointer
	if err := vkCheck(C.vmaMapMemory(a.h, alloc.h, &data)); err != nil {
		return nil, err
	}
	return data, nil
}

// UnmapMemory unmaps memory previously mapped with MapMemory.
func (a *Allocator) UnmapMemory(alloc *Allocation) {
	C.vmaUnmapMemory(a.h, alloc.h)
}

// FlushAllocation flushes host writes to a non-coherent allocation. Offset
// and size are relative to the allocation; size may be WholeSize.
func (a *Allocator) FlushAllocation(alloc *Allocation, offset, size uint64) error {
	return vkCheck(C.vmaFlushAllocation(a.h, alloc.h, C.VkDeviceSize(offset), C.VkDeviceSize(size)))
}

// InvalidateAllocation invalidates the host's view of a non-coherent
// allocation before reading it.
func (a *Allocator) InvalidateAllocation(alloc *Allocation, offset, size uint64) error {
	return vkCheck(C.vmaInvalidateAllocation(a.h, alloc.h, C.VkDeviceSize(offset), C.VkDeviceSize(size)))
}

// WholeSize passes VK_WHOLE_SIZE to flush and invalidate calls.
const WholeSize = ^uint64(0)
