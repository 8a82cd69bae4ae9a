package metrics

import "math"

// DeriveEntropy folds a snapshot's raw numeric fields into a single
// unsigned value:
//
//	round(cpu*100) + used_memory + network_rx + network_tx + sum(disk totals)
//
// The result seeds the random stream when no explicit seed is given, and
// drives the once-in-a-while signature row (entropy % 7 == 0). Pure
// function of the snapshot; all inputs are non-negative.
func DeriveEntropy(s *Snapshot) uint64 {
	entropy := uint64(math.Round(s.CPUUsage*100)) +
		s.UsedMemory +
		s.NetworkRx +
		s.NetworkTx
	for _, d := range s.DiskUsage {
		entropy += d.TotalSpace
	}
	return entropy
}
