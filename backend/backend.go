// Package backend provides the registry through which rendering
// backends are discovered and instantiated.
//
// Backends register themselves in init() functions, following the
// database/sql driver pattern. Importing a backend package for its
// side effects makes it available:
//
//	import _ "github.com/dest-hq/multirender/cpu"
//
//	r, err := backend.NewImageRenderer("cpu", 800, 600)
//
// Window renderers are selected the same way, or by priority via
// DefaultWindowRenderer, which prefers GPU-backed implementations
// when they are registered.
package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dest-hq/multirender"
)

// ErrNoBackend is returned when no suitable backend is registered.
var ErrNoBackend = errors.New("backend: no backend available")

// ImageRendererFactory creates an image renderer at the given size.
type ImageRendererFactory func(width, height uint32) (multirender.ImageRenderer, error)

// WindowRendererFactory creates a window renderer. The renderer starts
// suspended; callers activate it with Resume.
type WindowRendererFactory func() (multirender.WindowRenderer, error)

// Backend name constants for the in-tree backends.
const (
	// NameCPU is the software rasterizer backend.
	NameCPU = "cpu"
	// NameWGPU is the hybrid CPU/GPU backend via gogpu/wgpu.
	NameWGPU = "wgpu"
	// NameSerialize is the command-recording backend.
	NameSerialize = "serialize"
)

var (
	registryMu      sync.RWMutex
	imageFactories  = make(map[string]ImageRendererFactory)
	windowFactories = make(map[string]WindowRendererFactory)

	// Priority order for default window renderer selection
	// (first registered wins). GPU presentation beats copying frames
	// through the CPU swapchain path.
	windowPriority = []string{NameWGPU, NameCPU}
)

// RegisterImage registers an image renderer factory with the given
// name. It is typically called from init() in backend packages.
//
// RegisterImage panics if factory is nil or the name is already
// registered, so duplicate registrations are caught during program
// initialization rather than silently overwriting backends.
func RegisterImage(name string, factory ImageRendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: RegisterImage factory is nil")
	}
	if _, dup := imageFactories[name]; dup {
		panic("backend: RegisterImage called twice for " + name)
	}
	imageFactories[name] = factory
}

// RegisterWindow registers a window renderer factory with the given
// name. Same contract as RegisterImage.
func RegisterWindow(name string, factory WindowRendererFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: RegisterWindow factory is nil")
	}
	if _, dup := windowFactories[name]; dup {
		panic("backend: RegisterWindow called twice for " + name)
	}
	windowFactories[name] = factory
}

// Unregister removes a backend's factories from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(imageFactories, name)
	delete(windowFactories, name)
}

// NewImageRenderer creates an image renderer by backend name.
func NewImageRenderer(name string, width, height uint32) (multirender.ImageRenderer, error) {
	registryMu.RLock()
	factory, ok := imageFactories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown image backend %q (forgotten import?)", name)
	}
	return factory(width, height)
}

// NewWindowRenderer creates a window renderer by backend name.
func NewWindowRenderer(name string) (multirender.WindowRenderer, error) {
	registryMu.RLock()
	factory, ok := windowFactories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown window backend %q (forgotten import?)", name)
	}
	return factory()
}

// DefaultWindowRenderer creates the best available window renderer
// by priority. Returns ErrNoBackend if none is registered.
func DefaultWindowRenderer() (multirender.WindowRenderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range windowPriority {
		if factory, ok := windowFactories[name]; ok {
			return factory()
		}
	}

	// Fallback: any registered window backend.
	for _, factory := range windowFactories {
		return factory()
	}

	return nil, ErrNoBackend
}

// Available returns the sorted names of backends with at least one
// registered factory.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool, len(imageFactories)+len(windowFactories))
	for name := range imageFactories {
		seen[name] = true
	}
	for name := range windowFactories {
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name has any
// registered factory.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, img := imageFactories[name]
	_, win := windowFactories[name]
	return img || win
}
