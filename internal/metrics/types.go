// Package metrics samples host telemetry and derives the entropy value
// that seeds the render pipeline.
package metrics

import "math"

// netSignalDivisor scales the log-compressed network volume into the
// same rough magnitude as the cpu/memory ratios.
const netSignalDivisor = 15.0

// DiskMetrics describes a single mounted filesystem.
type DiskMetrics struct {
	Name           string `json:"name"`
	TotalSpace     uint64 `json:"total_space"`
	AvailableSpace uint64 `json:"available_space"`
}

// Snapshot is one immutable sample of host telemetry. It is produced
// once per frame and consumed read-only by the renderer.
type Snapshot struct {
	CPUUsage    float64       `json:"cpu_usage"`
	LoadAvg     float64       `json:"load_avg"`
	TotalMemory uint64        `json:"total_memory"`
	UsedMemory  uint64        `json:"used_memory"`
	DiskUsage   []DiskMetrics `json:"disk_usage"`
	NetworkRx   uint64        `json:"network_rx"`
	NetworkTx   uint64        `json:"network_tx"`
	Entropy     uint64        `json:"entropy"`
}

// CPURatio returns CPU usage as a 0..1 ratio.
func (s *Snapshot) CPURatio() float64 {
	return s.CPUUsage / 100.0
}

// MemRatio returns used/total memory. A zero total would make the ratio
// undefined, so it degrades to 0 rather than propagating a fault.
func (s *Snapshot) MemRatio() float64 {
	if s.TotalMemory == 0 {
		return 0
	}
	return float64(s.UsedMemory) / float64(s.TotalMemory)
}

// NetSignal returns the log-compressed network volume, clamped to >= 0.
func (s *Snapshot) NetSignal() float64 {
	signal := math.Log(float64(s.NetworkRx+s.NetworkTx)+1) / netSignalDivisor
	if signal < 0 {
		return 0
	}
	return signal
}

// NetRateKB returns the combined rx+tx volume in kilobytes, used by the
// status overlay.
func (s *Snapshot) NetRateKB() float64 {
	return float64(s.NetworkRx+s.NetworkTx) / 1024.0
}
