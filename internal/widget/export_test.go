package widget

import "time"

// SetProbe tightens the startup probe so tests do not sleep.
func (c *Controller) SetProbe(attempts int, delay time.Duration) {
	c.probeAttempts = attempts
	c.probeDelay = delay
}
