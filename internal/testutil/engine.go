package testutil

import (
	"context"
	"sync"

	"github.com/vk/optipng/internal/engine"
)

// RecordingEngine is a fake engine.Engine. It records every job and answers
// from Errors and Panics, keyed by input path; other inputs succeed with an
// empty report.
type RecordingEngine struct {
	Errors map[string]error
	Panics map[string]any

	mu   sync.Mutex
	jobs []engine.Job
}

// Optimize implements engine.Engine.
func (e *RecordingEngine) Optimize(_ context.Context, job engine.Job) (*engine.Report, error) {
	e.mu.Lock()
	e.jobs = append(e.jobs, job)
	e.mu.Unlock()

	if v, ok := e.Panics[job.Input]; ok {
		panic(v)
	}
	if err, ok := e.Errors[job.Input]; ok {
		return nil, err
	}
	return &engine.Report{Input: job.Input, Output: job.Output}, nil
}

// Jobs returns a copy of the jobs received so far.
func (e *RecordingEngine) Jobs() []engine.Job {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]engine.Job(nil), e.jobs...)
}

// Inputs returns the input paths received so far, in order.
func (e *RecordingEngine) Inputs() []string {
	jobs := e.Jobs()
	inputs := make([]string, len(jobs))
	for i, job := range jobs {
		inputs[i] = job.Input
	}
	return inputs
}
