package lock

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestAcquireWritesOwner(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer func() { _ = l.Release() }()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read lock file: %v", err)
	}
	if !strings.Contains(string(data), "pid="+strconv.Itoa(os.Getpid())) {
		t.Errorf("lock file = %q, want our pid", data)
	}
}

func TestSecondAcquireFails(t *testing.T) {
	dir := t.TempDir()

	l1, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	defer func() { _ = l1.Release() }()

	_, err = Acquire(dir)
	if err == nil {
		t.Fatal("second Acquire() should fail")
	}

	var held *HeldError
	if !errors.As(err, &held) {
		t.Fatalf("expected HeldError, got %T: %v", err, err)
	}
	if held.PID != os.Getpid() {
		t.Errorf("HeldError.PID = %d, want %d", held.PID, os.Getpid())
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := l.Release(); err != nil {
		t.Errorf("second Release() error = %v", err)
	}

	l2, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	_ = l2.Release()
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("nil Release() error = %v", err)
	}
}

func TestOwnerPID(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"pid=42\ntime=x\n", 42},
		{"time=x\npid=7", 7},
		{"", 0},
		{"pid=abc", 0},
	}
	for _, tt := range tests {
		if got := ownerPID(tt.in); got != tt.want {
			t.Errorf("ownerPID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
