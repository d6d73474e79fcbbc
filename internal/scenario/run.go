package scenario

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Step      Step
	Changed   bool  // Tilt changed the board
	Err       error // Add was rejected
	Rendering string
}

// Result is the outcome of running a scenario.
type Result struct {
	Scenario  *Scenario
	Steps     []StepResult
	Start     string
	Final     t2048.Snapshot
	Rendering string
}

// Run replays the scenario on a fresh model. opts are applied after the
// scenario's own options.
//
// A rejected add is recorded in its StepResult rather than returned; Run only
// fails when the starting board cannot be built.
func (sc *Scenario) Run(opts ...t2048.Option) (Result, error) {
	all := append(sc.modelOptions(), opts...)
	m, err := t2048.NewModelFromValues(flipRows(sc.Board.Rows), sc.Board.Score, sc.Board.MaxScore, sc.Board.GameOver, all...)
	if err != nil {
		return Result{}, fmt.Errorf("scenario: %s: building board: %w", sc.Name, err)
	}

	res := Result{
		Scenario: sc,
		Start:    m.String(),
		Steps:    make([]StepResult, 0, len(sc.Steps)),
	}
	for _, step := range sc.Steps {
		sr := StepResult{Step: step}
		switch {
		case step.Tilt != nil:
			sr.Changed = m.Tilt(*step.Tilt)
		case step.Add != nil:
			sr.Err = m.AddTile(t2048.NewTile(step.Add.Value, step.Add.Col, step.Add.Row))
		}
		sr.Rendering = m.String()
		res.Steps = append(res.Steps, sr)
	}

	// Observing the end state updates the best score like a player would.
	m.GameOver()
	res.Final = m.Snapshot()
	res.Rendering = m.String()
	return res, nil
}

// Check compares the result against every expectation in the scenario and
// reports all mismatches at once.
func (r Result) Check() error {
	var errs []error
	for i, sr := range r.Steps {
		if want := sr.Step.Changed; want != nil && *want != sr.Changed {
			errs = append(errs, fmt.Errorf("step %d (%v): changed = %v, want %v", i+1, sr.Step, sr.Changed, *want))
		}
		if want := sr.Step.Rejected; want != nil && *want != (sr.Err != nil) {
			errs = append(errs, fmt.Errorf("step %d (%v): rejected = %v (%v), want %v", i+1, sr.Step, sr.Err != nil, sr.Err, *want))
		}
		if sr.Step.Rejected == nil && sr.Err != nil {
			errs = append(errs, fmt.Errorf("step %d (%v): %w", i+1, sr.Step, sr.Err))
		}
	}

	exp := r.Scenario.Expect
	if exp.Rows != nil {
		if got := flipRows(r.Final.Values); !reflect.DeepEqual(got, exp.Rows) {
			errs = append(errs, fmt.Errorf("rows = %v, want %v", got, exp.Rows))
		}
	}
	if exp.Score != nil && *exp.Score != r.Final.Score {
		errs = append(errs, fmt.Errorf("score = %d, want %d", r.Final.Score, *exp.Score))
	}
	if exp.MaxScore != nil && *exp.MaxScore != r.Final.MaxScore {
		errs = append(errs, fmt.Errorf("max score = %d, want %d", r.Final.MaxScore, *exp.MaxScore))
	}
	if exp.GameOver != nil && *exp.GameOver != r.Final.GameOver {
		errs = append(errs, fmt.Errorf("game over = %v, want %v", r.Final.GameOver, *exp.GameOver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("scenario %s: %w", r.Scenario.Name, errors.Join(errs...))
	}
	return nil
}
