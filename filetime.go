package btime

// Windows file times count 100-nanosecond intervals since 1601-01-01 UTC.
// epochIntervals is the offset of the Unix epoch from the Windows epoch in
// those units. The value is part of the on-disk format and must not drift.
const (
	intervalsPerSecond = 10000000
	epochIntervals     = 116444736000000000
)

// UnixToFiletime converts whole seconds since the Unix epoch into the low
// and high 32-bit words of a Windows FILETIME value.
func UnixToFiletime(seconds uint64) (lo, hi uint32) {
	intervals := seconds*intervalsPerSecond + epochIntervals
	return uint32(intervals & 0xFFFFFFFF), uint32(intervals >> 32)
}

// FiletimeToUnix converts the low and high 32-bit words of a Windows
// FILETIME value back into whole seconds since the Unix epoch. Sub-second
// intervals are truncated.
func FiletimeToUnix(lo, hi uint32) uint64 {
	intervals := uint64(hi)<<32 | uint64(lo)
	return (intervals - epochIntervals) / intervalsPerSecond
}
