package model

// MemorySample holds the system memory counters read from /proc/meminfo.
// All values are kilobytes. Missing counters are zero.
type MemorySample struct {
	TotalKB     int64
	FreeKB      int64
	AvailableKB int64
	CachedKB    int64
	BuffersKB   int64
	SwapTotalKB int64
	SwapFreeKB  int64
}

// UsedKB is total minus free minus cached, clamped to zero. Computed at
// render time, never stored.
func (m MemorySample) UsedKB() int64 {
	used := m.TotalKB - m.FreeKB - m.CachedKB
	if used < 0 {
		return 0
	}
	return used
}

// SwapUsedKB is swap total minus swap free, clamped to zero.
func (m MemorySample) SwapUsedKB() int64 {
	used := m.SwapTotalKB - m.SwapFreeKB
	if used < 0 {
		return 0
	}
	return used
}
