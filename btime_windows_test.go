//go:build windows

package btime

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func creationTimeSec(t *testing.T, path string) uint64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	d := info.Sys().(*syscall.Win32FileAttributeData)
	return FiletimeToUnix(d.CreationTime.LowDateTime, d.CreationTime.HighDateTime)
}

func TestSetUnixReadBack(t *testing.T) {
	path := writeTestFile(t, "stamped.txt")
	const want = 1234567890
	if err := SetUnix(path, want); err != nil {
		t.Fatalf("SetUnix() error = %v", err)
	}
	if got := creationTimeSec(t, path); got != want {
		t.Errorf("creation time = %d, want %d", got, want)
	}
}

func TestSetWholeSecondsOnly(t *testing.T) {
	path := writeTestFile(t, "frac.txt")
	if err := Set(path, time.Unix(1600000000, 123456789)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := creationTimeSec(t, path); got != 1600000000 {
		t.Errorf("creation time = %d, want 1600000000", got)
	}
}

func TestSetUnixDirectory(t *testing.T) {
	dir := t.TempDir()
	const want = 946684800
	if err := SetUnix(dir, want); err != nil {
		t.Fatalf("SetUnix() on directory error = %v", err)
	}
	if got := creationTimeSec(t, dir); got != want {
		t.Errorf("creation time = %d, want %d", got, want)
	}
}

func TestHandleReleased(t *testing.T) {
	path := writeTestFile(t, "release.txt")
	if err := SetUnix(path, 1234567890); err != nil {
		t.Fatalf("SetUnix() error = %v", err)
	}
	// A leaked handle would make the delete fail with a sharing violation.
	if err := os.Remove(path); err != nil {
		t.Errorf("file still locked after SetUnix: %v", err)
	}
}

func TestModificationTimeUntouched(t *testing.T) {
	path := writeTestFile(t, "mtime.txt")
	stamp := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	if err := SetUnix(path, 946684800); err != nil {
		t.Fatalf("SetUnix() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(stamp) {
		t.Errorf("modification time = %v, want %v", info.ModTime(), stamp)
	}
}

func TestBtimeReadBack(t *testing.T) {
	path := writeTestFile(t, "legacy.txt")
	code, err := Btime([]byte(path), float64(1234567890))
	if err != nil || code != 0 {
		t.Fatalf("Btime() = %d, %v", code, err)
	}
	if got := creationTimeSec(t, path); got != 1234567890 {
		t.Errorf("creation time = %d, want 1234567890", got)
	}
}
