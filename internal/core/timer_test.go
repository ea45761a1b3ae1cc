package core

import (
	"testing"
	"time"
)

func TestWindowArmAndElapse(t *testing.T) {
	start := time.Unix(1000, 0)
	w := NewWindow(150 * time.Millisecond)

	if w.IsArmed(start) {
		t.Fatal("new window should be disarmed")
	}

	w.Arm(start)

	tests := []struct {
		name     string
		offset   time.Duration
		expected bool
	}{
		{"at arm time", 0, true},
		{"inside window", 100 * time.Millisecond, true},
		{"at window edge", 150 * time.Millisecond, true},
		{"after window", 151 * time.Millisecond, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := w.IsArmed(start.Add(tc.offset))
			if got != tc.expected {
				t.Errorf("IsArmed(+%v) = %v, expected %v", tc.offset, got, tc.expected)
			}
		})
	}

	// Elapsed windows stay disarmed even if queried with an earlier time.
	if w.IsArmed(start) {
		t.Error("window should stay disarmed after elapsing")
	}
}

func TestWindowConsume(t *testing.T) {
	now := time.Unix(0, 0)
	w := NewWindow(time.Second)
	w.Arm(now)
	w.Consume()

	if w.IsArmed(now) {
		t.Error("consumed window should be disarmed")
	}

	w.Arm(now.Add(time.Second))
	if !w.IsArmed(now.Add(time.Second)) {
		t.Error("window should re-arm after consume")
	}
}

func TestWindowGate(t *testing.T) {
	now := time.Unix(0, 0)
	w := NewWindow(500 * time.Millisecond)

	if !w.Gate(now) {
		t.Fatal("first Gate should fire")
	}
	if w.Gate(now.Add(200 * time.Millisecond)) {
		t.Error("Gate inside cooldown should not fire")
	}
	if w.Gate(now.Add(499 * time.Millisecond)) {
		t.Error("Gate just before cooldown end should not fire")
	}
	if !w.Gate(now.Add(501 * time.Millisecond)) {
		t.Error("Gate after cooldown should fire")
	}
}
