package metrics

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"

	"github.com/rileyhilliard/pulse/internal/logger"
)

// minElapsed floors the time between network samples so a burst of
// back-to-back calls cannot divide by a near-zero interval.
const minElapsed = 1e-3

// Sampler gathers host telemetry via gopsutil. Individual gauge failures
// degrade to zero values so a snapshot is always produced; the renderer
// must never stall on a missing metric.
//
// Network counters are cumulative since boot, so the sampler keeps the
// previous totals and a timestamp to report per-second rates.
type Sampler struct {
	log      logger.Logger
	prevRx   uint64
	prevTx   uint64
	prevTime time.Time
	primed   bool
}

// NewSampler creates a sampler and primes the CPU gauge. gopsutil's
// first non-blocking cpu.Percent call always reports 0, so one throwaway
// read here keeps the first rendered frame honest.
func NewSampler(log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	s := &Sampler{log: log}
	if _, err := cpu.Percent(0, false); err != nil {
		s.log.Debug("cpu prime failed: %v", err)
	}
	return s
}

// Sample collects one snapshot of host telemetry and derives its entropy.
func (s *Sampler) Sample() *Snapshot {
	snap := &Snapshot{}

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		snap.CPUUsage = pcts[0]
	} else if err != nil {
		s.log.Debug("cpu sample failed: %v", err)
	}

	if avg, err := load.Avg(); err == nil {
		snap.LoadAvg = avg.Load1
	} else {
		s.log.Debug("load sample failed: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.TotalMemory = vm.Total
		snap.UsedMemory = vm.Used
	} else {
		s.log.Debug("memory sample failed: %v", err)
	}

	snap.DiskUsage = s.sampleDisks()
	snap.NetworkRx, snap.NetworkTx = s.sampleNetwork()
	snap.Entropy = DeriveEntropy(snap)

	return snap
}

// sampleDisks reports total/available space per physical partition.
func (s *Sampler) sampleDisks() []DiskMetrics {
	parts, err := disk.Partitions(false)
	if err != nil {
		s.log.Debug("disk partitions failed: %v", err)
		return nil
	}

	disks := make([]DiskMetrics, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			s.log.Debug("disk usage for %s failed: %v", p.Mountpoint, err)
			continue
		}
		disks = append(disks, DiskMetrics{
			Name:           p.Device,
			TotalSpace:     usage.Total,
			AvailableSpace: usage.Free,
		})
	}
	return disks
}

// sampleNetwork reads the cumulative rx/tx byte counters across all
// interfaces and converts them to per-second rates.
func (s *Sampler) sampleNetwork() (rx, tx uint64) {
	counters, err := psnet.IOCounters(false)
	if err != nil {
		s.log.Debug("network sample failed: %v", err)
		return 0, 0
	}
	var totalRx, totalTx uint64
	for _, c := range counters {
		totalRx += c.BytesRecv
		totalTx += c.BytesSent
	}
	return s.networkRates(totalRx, totalTx, time.Now())
}

// networkRates turns cumulative counter totals into per-second rates
// against the previous sample, then stores the totals for the next one.
// The first call has no baseline and reports zero.
func (s *Sampler) networkRates(totalRx, totalTx uint64, now time.Time) (rx, tx uint64) {
	if s.primed {
		elapsed := now.Sub(s.prevTime).Seconds()
		if elapsed < minElapsed {
			elapsed = minElapsed
		}
		rx = rateSince(totalRx, s.prevRx, elapsed)
		tx = rateSince(totalTx, s.prevTx, elapsed)
	}
	s.prevRx, s.prevTx, s.prevTime, s.primed = totalRx, totalTx, now, true
	return rx, tx
}

// rateSince converts a counter delta into a per-second rate. A counter
// that went backwards (interface reset) reads as zero rather than a
// huge unsigned wraparound.
func rateSince(current, previous uint64, elapsed float64) uint64 {
	if current < previous {
		return 0
	}
	return uint64(float64(current-previous) / elapsed)
}
