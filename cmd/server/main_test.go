package main

import (
	"testing"
	"time"
)

func TestDurationEnv(t *testing.T) {
	t.Setenv("GW_TEST_INTERVAL", "")
	if got := durationEnv("GW_TEST_INTERVAL", time.Second); got != time.Second {
		t.Fatalf("empty env fallback mismatch: got=%v", got)
	}

	t.Setenv("GW_TEST_INTERVAL", "5")
	if got := durationEnv("GW_TEST_INTERVAL", time.Second); got != 5*time.Second {
		t.Fatalf("bare-seconds parse mismatch: got=%v", got)
	}

	t.Setenv("GW_TEST_INTERVAL", "250ms")
	if got := durationEnv("GW_TEST_INTERVAL", time.Second); got != 250*time.Millisecond {
		t.Fatalf("duration parse mismatch: got=%v", got)
	}

	t.Setenv("GW_TEST_INTERVAL", "banana")
	if got := durationEnv("GW_TEST_INTERVAL", time.Second); got != time.Second {
		t.Fatalf("garbage fallback mismatch: got=%v", got)
	}
}
