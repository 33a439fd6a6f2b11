package driver

import (
	"fmt"
	"time"
)

// trace writes one line per completed phase to c.Trace.
func (c *Config) trace(phase Phase, d time.Duration, err error) {
	if c.Trace == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	}
	fmt.Fprintf(c.Trace, "phase %s: %v %s\n", phase, d, status)
}
