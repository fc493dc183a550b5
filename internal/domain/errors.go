package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports missing service credentials or settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstreamParse reports a completion response that could not be parsed.
	ErrUpstreamParse = errors.New("upstream parse error")
	// ErrAssetGeneration reports a failed image request.
	ErrAssetGeneration = errors.New("asset generation error")
)

// Stage names a pipeline stage for error reporting.
type Stage string

const (
	StageAnalysis Stage = "deep_analysis"
	StageInsight  Stage = "insight_synthesis"
	StageDraft    Stage = "draft_generation"
	StagePrompts  Stage = "image_prompts"
	StageAssets   Stage = "asset_generation"
)

// StageError carries the failing stage alongside the underlying error.
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

// NewStageError wraps err for stage. A nil err yields nil.
func NewStageError(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// FailedStage returns the stage recorded in err, if any.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
