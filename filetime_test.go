package btime

import "testing"

func TestUnixToFiletime(t *testing.T) {
	tests := []struct {
		name    string
		seconds uint64
		want    uint64
	}{
		// The Unix epoch itself is the documented offset between the
		// two epochs and must come out bit-for-bit.
		{name: "unix epoch", seconds: 0, want: 116444736000000000},
		{name: "one second in", seconds: 1, want: 116444736010000000},
		{name: "2020-01-01", seconds: 1577836800, want: 132223104000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := UnixToFiletime(tt.seconds)
			got := uint64(hi)<<32 | uint64(lo)
			if got != tt.want {
				t.Errorf("UnixToFiletime(%d) intervals = %d, want %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFiletimeRoundTrip(t *testing.T) {
	seconds := []uint64{
		0,
		1,
		59,
		1234567890,
		1577836800,
		1<<31 - 1,
		1 << 32,
		1 << 40,
	}
	for _, sec := range seconds {
		lo, hi := UnixToFiletime(sec)
		if got := FiletimeToUnix(lo, hi); got != sec {
			t.Errorf("round trip %d -> (%d, %d) -> %d", sec, lo, hi, got)
		}
	}
}

func TestFiletimeToUnixTruncates(t *testing.T) {
	// Half a second past the epoch still reads as second zero.
	const halfSecond = 116444736000000000 + intervalsPerSecond/2
	lo := uint32(halfSecond & 0xFFFFFFFF)
	hi := uint32(halfSecond >> 32)
	if got := FiletimeToUnix(lo, hi); got != 0 {
		t.Errorf("FiletimeToUnix(half second) = %d, want 0", got)
	}
}
