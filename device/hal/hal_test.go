package hal

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	var c SystemClock

	start := c.Now()
	c.Sleep(2 * time.Millisecond)
	c.Sleep(0)
	c.Sleep(-time.Second)

	if elapsed := c.Now().Sub(start); elapsed < 2*time.Millisecond {
		t.Errorf("elapsed = %v, want >= 2ms", elapsed)
	}
}
