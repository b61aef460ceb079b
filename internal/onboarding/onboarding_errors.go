package onboarding

import "fmt"

// StepError names the wizard step that failed. Steps before it stay applied.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("onboarding step %d (%s): %v", e.Step, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
