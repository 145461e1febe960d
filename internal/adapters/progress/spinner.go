package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// SpinnerProgressReporter shows a spinner with a trail of completed stages on stderr
type SpinnerProgressReporter struct {
	spinner      *spinner.Spinner
	out          io.Writer
	stages       []stageInfo
	currentStage string
}

type stageInfo struct {
	Stage     string
	Message   string
	StartTime time.Time
	EndTime   time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stderr,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != r.currentStage {
		r.completeCurrentStage()
		if event.Stage != usecase.StageCompleted {
			r.currentStage = event.Stage
			r.stages = append(r.stages, stageInfo{
				Stage:     event.Stage,
				Message:   event.Message,
				StartTime: time.Now(),
			})
		} else {
			r.currentStage = ""
		}
	}

	if event.Spinner {
		r.spinner.Suffix = " " + r.display(event.Message)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.pause(func() {
		color.New(color.FgCyan).Fprintln(r.out, message)
	})
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.pause(func() {
		color.New(color.FgRed).Fprintln(r.out, message)
	})
}

func (r *SpinnerProgressReporter) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	print()
	if wasActive {
		r.spinner.Start()
	}
}

func (r *SpinnerProgressReporter) completeCurrentStage() {
	if len(r.stages) > 0 && r.stages[len(r.stages)-1].EndTime.IsZero() {
		r.stages[len(r.stages)-1].EndTime = time.Now()
	}
}

// display renders finished stages followed by the current message
func (r *SpinnerProgressReporter) display(message string) string {
	var display string
	for _, stage := range r.stages {
		if stage.EndTime.IsZero() {
			continue
		}
		duration := stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)
		display += fmt.Sprintf("%s %s (%s) → ", color.GreenString("✓"), stageName(stage.Stage), duration)
	}
	return display + color.YellowString("●") + " " + message
}

func stageName(stage string) string {
	switch stage {
	case usecase.StageResolving:
		return "Resolving"
	case usecase.StageSubmitting:
		return "Submitting"
	case usecase.StageConfirming:
		return "Confirming"
	case usecase.StageQuerying:
		return "Querying"
	default:
		return stage
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
