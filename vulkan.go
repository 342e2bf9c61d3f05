package vma

/*
#include <vma/vk_mem_alloc.h>
*/
import "C"

import "unsafe"

// Vulkan handle wrappers. The package does not depend on a Vulkan binding;
// callers hand in raw handles from whichever one they use. Each wrapper is
// a typed view over the native handle with FromRaw/Raw at the boundary.

// Instance wraps a VkInstance.
type Instance struct {
	h C.VkInstance
}

// InstanceFromRaw wraps a raw VkInstance handle.
func InstanceFromRaw(raw unsafe.Pointer) Instance {
	return Instance{h: C.VkInstance(raw)}
}

// Raw returns the native handle.
func (i Instance) Raw() unsafe.Pointer { return unsafe.Pointer(i.h) }

// PhysicalDevice wraps a VkPhysicalDevice.
type PhysicalDevice struct {
	h C.VkPhysicalDevice
}

// PhysicalDeviceFromRaw wraps a raw VkPhysicalDevice handle.
func PhysicalDeviceFromRaw(raw unsafe.Pointer) PhysicalDevice {
	return PhysicalDevice{h: C.VkPhysicalDevice(raw)}
}

// Raw returns the native handle.
func (p PhysicalDevice) Raw() unsafe.Pointer { return unsafe.Pointer(p.h) }

// Device wraps a VkDevice.
type Device struct {
	h C.VkDevice
}

// DeviceFromRaw wraps a raw VkDevice handle.
func DeviceFromRaw(raw unsafe.Pointer) Device {
	return Device{h: C.VkDevice(raw)}
}

// Raw returns the native handle.
func (d Device) Raw() unsafe.Pointer { return unsafe.Pointer(d.h) }

// Buffer wraps a VkBuffer.
type Buffer struct {
	h C.VkBuffer
}

// BufferFromRaw wraps a raw VkBuffer handle.
func BufferFromRaw(raw unsafe.Pointer) Buffer {
	return Buffer{h: C.VkBuffer(raw)}
}

// Raw returns the native handle.
func (b Buffer) Raw() unsafe.Pointer { return unsafe.Pointer(b.h) }

// Image wraps a VkImage.
type Image struct {
	h C.VkImage
}

// ImageFromRaw wraps a raw VkImage handle.
func ImageFromRaw(raw unsafe.Pointer) Image {
	return Image{h: C.VkImage(raw)}
}

// Raw returns the native handle.
func (im Image) Raw() unsafe.Pointer { return unsafe.Pointer(im.h) }

// DeviceMemory wraps a VkDeviceMemory.
type DeviceMemory struct {
	h C.VkDeviceMemory
}

// DeviceMemoryFromRaw wraps a raw VkDeviceMemory handle.
func DeviceMemoryFromRaw(raw unsafe.Pointer) DeviceMemory {
	return DeviceMemory{h: C.VkDeviceMemory(raw)}
}

// Raw returns the native handle.
func (m DeviceMemory) Raw() unsafe.Pointer { return unsafe.Pointer(m.h) }

// MakeAPIVersion packs a Vulkan version the way VK_MAKE_API_VERSION does.
func MakeAPIVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

// APIVersion1_0 through APIVersion1_3 are the core Vulkan versions VMA
// understands via AllocatorCreateInfo.VulkanAPIVersion.
var (
	APIVersion1_0 = MakeAPIVersion(0, 1, 0, 0)
	APIVersion1_1 = MakeAPIVersion(0, 1, 1, 0)
	APIVersion1_2 = MakeAPIVersion(0, 1, 2, 0)
	APIVersion1_3 = MakeAPIVersion(0, 1, 3, 0)
)
