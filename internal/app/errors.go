package app

import "fmt"

// Stage names the startup step that failed.
type Stage string

const (
	StageConfig   Stage = "config"
	StageDatabase Stage = "database"
	StageSeed     Stage = "seed"
	StageLLM      Stage = "llm"
)

// StartupError is returned when the program cannot get ready to answer.
// No query is routed after one of these.
type StartupError struct {
	Stage Stage
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
