package constants

import (
	"testing"
	"time"
)

// TestFrameInterval verifies frame rate conversion and the fallback for non-positive rates
func TestFrameInterval(t *testing.T) {
	tests := []struct {
		name     string
		fps      int
		expected time.Duration
	}{
		{name: "Default rate", fps: 30, expected: time.Second / 30},
		{name: "Sixty", fps: 60, expected: time.Second / 60},
		{name: "Zero falls back", fps: 0, expected: time.Second / DefaultFramesPerSecond},
		{name: "Negative falls back", fps: -5, expected: time.Second / DefaultFramesPerSecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameInterval(tt.fps); got != tt.expected {
				t.Errorf("FrameInterval(%d) = %v, want %v", tt.fps, got, tt.expected)
			}
		})
	}
}
