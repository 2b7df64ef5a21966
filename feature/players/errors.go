package players

import (
	"errors"

	"player-enricher/feature/players/rankings"
	"player-enricher/feature/players/sink"
)

// Stages of a pipeline run, as reported by StageError.
const (
	StageValuation = "valuation"
	StageRegistry  = "registry"
	StagePlan      = "plan"
	StageWrite     = "write"
)

var (
	// ErrSourceNotFound marks a ranking format with no upload.
	ErrSourceNotFound = rankings.ErrSourceNotFound
	// ErrNotFound is returned for an unknown player id.
	ErrNotFound = sink.ErrNotFound
	// ErrPartialWrite is returned when some sink chunks failed.
	ErrPartialWrite = sink.ErrPartialWrite
	// ErrNoDatabase is returned by operations that need the sink when no
	// database is connected.
	ErrNoDatabase = errors.New("database not connected")
	// ErrUnknownFormat is returned for an unknown ranking format.
	ErrUnknownFormat = errors.New("unknown ranking format")
)

// StageError ties a fatal run failure to the stage it happened in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage of err, or "" if it carries none.
func FailedStage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
