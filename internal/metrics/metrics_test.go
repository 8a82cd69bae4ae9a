package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEntropy_SumsAllSignals(t *testing.T) {
	snap := &Snapshot{
		CPUUsage:   50.0,
		UsedMemory: 1000,
		NetworkRx:  200,
		NetworkTx:  300,
		DiskUsage: []DiskMetrics{
			{Name: "sda", TotalSpace: 400},
			{Name: "sdb", TotalSpace: 100},
		},
	}

	// 50.0*100 + 1000 + 200 + 300 + 500
	assert.Equal(t, uint64(7000), DeriveEntropy(snap))
}

func TestDeriveEntropy_RoundsCPUComponent(t *testing.T) {
	snap := &Snapshot{CPUUsage: 12.346}
	assert.Equal(t, uint64(1235), DeriveEntropy(snap), "cpu*100 should round, not truncate")
}

func TestDeriveEntropy_ZeroSnapshot(t *testing.T) {
	assert.Equal(t, uint64(0), DeriveEntropy(&Snapshot{}))
}

func TestMemRatio_ZeroTotalDegradesToZero(t *testing.T) {
	snap := &Snapshot{UsedMemory: 500, TotalMemory: 0}
	assert.Equal(t, 0.0, snap.MemRatio(), "undefined ratio must degrade to 0, not fault")
}

func TestMemRatio_NormalCase(t *testing.T) {
	snap := &Snapshot{UsedMemory: 750, TotalMemory: 1000}
	assert.InDelta(t, 0.75, snap.MemRatio(), 1e-9)
}

func TestCPURatio(t *testing.T) {
	snap := &Snapshot{CPUUsage: 42.0}
	assert.InDelta(t, 0.42, snap.CPURatio(), 1e-9)
}

func TestNetSignal_ZeroTrafficIsZero(t *testing.T) {
	snap := &Snapshot{}
	// ln(0+0+1)/15 == 0, which is the clamp floor.
	assert.Equal(t, 0.0, snap.NetSignal())
}

func TestNetSignal_LogCompressed(t *testing.T) {
	snap := &Snapshot{NetworkRx: 1000, NetworkTx: 999}
	want := math.Log(2000) / 15
	assert.InDelta(t, want, snap.NetSignal(), 1e-9)
}

func TestNetSignal_NeverNegative(t *testing.T) {
	snaps := []*Snapshot{
		{},
		{NetworkRx: 1},
		{NetworkRx: math.MaxUint32, NetworkTx: math.MaxUint32},
	}
	for _, snap := range snaps {
		assert.GreaterOrEqual(t, snap.NetSignal(), 0.0)
	}
}

func TestNetRateKB(t *testing.T) {
	snap := &Snapshot{NetworkRx: 1024, NetworkTx: 1024}
	assert.InDelta(t, 2.0, snap.NetRateKB(), 1e-9)
}
