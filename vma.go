// Package vma wraps the Vulkan Memory Allocator library. Handles are thin
// wrappers over the native ones, create-info structs are plain Go structs
// converted at the call boundary, and the enum and flag types in
// enums_gen.go are produced by cmd/vmagen from vk_mem_alloc.h.
//
// The package expects the VMA header to be reachable as
// <vma/vk_mem_alloc.h>, which is where the LunarG SDK installs it. Point
// CGO_CFLAGS at the SDK include directory when building:
//
//	CGO_CFLAGS="-I$VULKAN_SDK/include" go build
package vma

/*
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lvulkan

#include <vma/vk_mem_alloc.h>
*/
import "C"

import "fmt"

//go:generate go run github.com/vma-go/vma/cmd/vmagen gen .

// Error is a non-success VkResult returned by the native library.
type Error struct {
	Code int32
}

func (e *Error) Error() string {
	if name, ok := resultNames[e.Code]; ok {
		return fmt.Sprintf("vma: %s", name)
	}
	return fmt.Sprintf("vma: VkResult(%d)", e.Code)
}

// resultNames covers the codes VMA itself produces. Anything else prints
// numerically.
var resultNames = map[int32]string{
	-1:          "VK_ERROR_OUT_OF_HOST_MEMORY",
	-2:          "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	-3:          "VK_ERROR_INITIALIZATION_FAILED",
	-4:          "VK_ERROR_DEVICE_LOST",
	-5:          "VK_ERROR_MEMORY_MAP_FAILED",
	-7:          "VK_ERROR_EXTENSION_NOT_PRESENT",
	-8:          "VK_ERROR_FEATURE_NOT_PRESENT",
	-1000069000: "VK_ERROR_OUT_OF_POOL_MEMORY",
	-1000072003: "VK_ERROR_FRAGMENTED_POOL",
	-1000161000: "VK_ERROR_FRAGMENTATION",
	-1000257000: "VK_ERROR_UNKNOWN",
}

// vkCheck converts a VkResult into an error. VK_SUCCESS and the positive
// status codes map to nil.
func vkCheck(res C.VkResult) error {
	if res >= 0 {
		return nil
	}
	return &Error{Code: int32(res)}
}
