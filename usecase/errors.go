package usecase

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step an error originated from
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageStore      Stage = "store"
	StageTranscribe Stage = "transcribe"
	StageConverse   Stage = "converse"
	StageSynthesize Stage = "synthesize"
)

// ErrMissingRecordingURL signals that the processing entry point was
// invoked without a recording reference.
var ErrMissingRecordingURL = errors.New("recording URL is missing")

// StageError wraps a provider or transport failure with the pipeline
// stage it occurred in, so handlers can log where the chain broke.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
