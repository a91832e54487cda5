package tui

import (
	"github.com/rgehrsitz/taxcmp/internal/compare"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneCompare Scene = iota
	SceneDetail
	SceneHelp
)

// String returns the scene name for the title bar
func (s Scene) String() string {
	switch s {
	case SceneCompare:
		return "Compare"
	case SceneDetail:
		return "Detail"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// ComparisonCompleteMsg carries a finished comparison. Seq identifies the
// request so results for superseded inputs can be dropped.
type ComparisonCompleteMsg struct {
	Seq int
	Set *compare.ComparisonSet
	Err error
}

// EvaluationCompleteMsg carries a finished single-jurisdiction evaluation
type EvaluationCompleteMsg struct {
	Seq        int
	Evaluation *compare.Evaluation
	Err        error
}
