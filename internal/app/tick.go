package app

import (
	"time"
)

// runTickLoop is the render-tick consumer: exactly one integrator pass per
// tick, strictly after any producer writes queued since the previous pass.
// The mailbox Take consumes the transient deltas, so a stale delta is never
// integrated twice.
func (a *App) runTickLoop(stopCh chan struct{}) {
	defer a.wg.Done()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			snapshot := a.integrator.Step(a.state.Take())
			if a.OnSnapshot != nil {
				a.OnSnapshot(snapshot)
			}
		}
	}
}
