package export

import (
	"sync"

	"backoffice/internal/domain"
)

// State tracks the export/print affordance lifecycle:
// Idle -> Preparing -> (Succeeded | Failed) -> Idle (on the next Begin).
type State string

const (
	StateIdle      State = "idle"
	StatePreparing State = "preparing"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Job serializes export preparation. While one export is preparing, a repeat
// invocation is rejected so duplicate downloads cannot pile up.
type Job struct {
	mu    sync.Mutex
	state State
}

func NewJob() *Job {
	return &Job{state: StateIdle}
}

// Begin moves the job into Preparing. It fails while another preparation is
// still running.
func (j *Job) Begin() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state == StatePreparing {
		return domain.ExportInProgressError{}
	}
	j.state = StatePreparing
	return nil
}

// Finish records the outcome of the current preparation.
func (j *Job) Finish(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err != nil {
		j.state = StateFailed
		return
	}
	j.state = StateSucceeded
}

// Current returns the job state.
func (j *Job) Current() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}
