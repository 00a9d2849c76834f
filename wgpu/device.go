package wgpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/dest-hq/multirender"
)

// ErrNoGPU is returned when no suitable GPU adapter is available.
var ErrNoGPU = errors.New("wgpu: no GPU adapter available")

// GPUInfo describes the selected GPU adapter.
type GPUInfo struct {
	Name       string
	Vendor     string
	DeviceType gputypes.DeviceType
	Backend    gputypes.Backend
	Driver     string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// deviceState holds the GPU objects for one renderer. Resources are
// acquired in Resume and released in Suspend, in reverse order of
// creation.
type deviceState struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	info     *GPUInfo
}

// initDevice brings up instance, adapter, device, and queue.
func initDevice() (*deviceState, error) {
	s := &deviceState{}

	s.instance = core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapter, err := s.instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoGPU, err)
	}
	s.adapter = adapter

	if info, err := core.GetAdapterInfo(adapter); err == nil {
		s.info = &GPUInfo{
			Name:       info.Name,
			Vendor:     info.Vendor,
			DeviceType: info.DeviceType,
			Backend:    info.Backend,
			Driver:     info.Driver,
		}
		multirender.Logger().Info("wgpu adapter selected",
			slog.String("gpu", s.info.String()))
	}

	device, err := core.RequestDevice(adapter, &gputypes.DeviceDescriptor{
		Label:          "multirender-device",
		RequiredLimits: gputypes.DefaultLimits(),
	})
	if err != nil {
		s.release()
		return nil, fmt.Errorf("wgpu: device creation failed: %w", err)
	}
	s.device = device

	queue, err := core.GetDeviceQueue(device)
	if err != nil {
		s.release()
		return nil, fmt.Errorf("wgpu: queue retrieval failed: %w", err)
	}
	s.queue = queue

	if limits, err := core.GetDeviceLimits(device); err == nil {
		multirender.Logger().Debug("wgpu device limits",
			slog.Uint64("maxTextureDimension2D", uint64(limits.MaxTextureDimension2D)),
			slog.Uint64("maxBufferSize", uint64(limits.MaxBufferSize)))
	}

	return s, nil
}

// release drops device then adapter. Safe on partially initialized
// state.
func (s *deviceState) release() {
	if !s.device.IsZero() {
		if err := core.DeviceDrop(s.device); err != nil {
			multirender.Logger().Warn("wgpu device release failed",
				slog.String("error", err.Error()))
		}
		s.device = core.DeviceID{}
	}
	if !s.adapter.IsZero() {
		if err := core.AdapterDrop(s.adapter); err != nil {
			multirender.Logger().Warn("wgpu adapter release failed",
				slog.String("error", err.Error()))
		}
		s.adapter = core.AdapterID{}
	}
	s.queue = core.QueueID{}
	s.instance = nil
	s.info = nil
}
