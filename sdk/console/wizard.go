package console

import (
	"context"
	"time"
)

// Step is one page of a wizard: its fields and the rules that gate
// leaving it.
type Step struct {
	Name   string
	Fields []string
}

// FormDraft holds a step's in-progress values and their current errors.
type FormDraft struct {
	Values map[string]string
	Errors map[string]string
}

func newFormDraft() FormDraft {
	return FormDraft{
		Values: make(map[string]string),
		Errors: make(map[string]string),
	}
}

// SubmitFunc receives the merged field values of every step when the
// wizard finishes.
type SubmitFunc func(ctx context.Context, values map[string]string) Result

// Wizard is a step-indexed form flow. Like Browser, it is a
// single-goroutine state machine.
type Wizard struct {
	steps  []Step
	rules  FieldRules
	drafts []FormDraft
	submit SubmitFunc

	current int
	busy    bool
	done    bool

	// now is swappable for deterministic date rules in tests.
	now func() time.Time
}

// NewWizard builds a wizard over the given steps and rule set.
func NewWizard(steps []Step, rules FieldRules, submit SubmitFunc) *Wizard {
	drafts := make([]FormDraft, len(steps))
	for i := range drafts {
		drafts[i] = newFormDraft()
	}
	return &Wizard{
		steps:  steps,
		rules:  rules,
		drafts: drafts,
		submit: submit,
		now:    time.Now,
	}
}

// NewSupervisorWizard is the three-step supervisor creation flow the
// console ships: personal details, contact and location, then banking
// and credentials.
func NewSupervisorWizard(submit SubmitFunc) *Wizard {
	steps := []Step{
		{Name: "Personal Details", Fields: []string{
			"firstName", "lastName", "idNumber", "dateOfBirth", "idExpiryDate", "type",
		}},
		{Name: "Contact & Location", Fields: []string{
			"telephone", "officialEmail", "country", "region", "city", "address",
		}},
		{Name: "Banking & Credentials", Fields: []string{
			"bankName", "ibanNumber", "graduationCertificate", "acquiredLanguages",
		}},
	}
	return NewWizard(steps, SupervisorRules(), submit)
}

// CurrentStep is 1-based.
func (w *Wizard) CurrentStep() int { return w.current + 1 }
func (w *Wizard) StepCount() int   { return len(w.steps) }
func (w *Wizard) Busy() bool       { return w.busy }
func (w *Wizard) Done() bool       { return w.done }

// Draft exposes the current step's values and errors.
func (w *Wizard) Draft() FormDraft {
	return w.drafts[w.current]
}

// SetField records a value on the current step and re-validates just
// that field.
func (w *Wizard) SetField(field, value string) {
	if w.busy || w.done {
		return
	}

	draft := &w.drafts[w.current]
	draft.Values[field] = value
	w.validateField(draft, field)
}

// ValidateField re-runs one field's rules, touching no other errors.
func (w *Wizard) ValidateField(field string) string {
	draft := &w.drafts[w.current]
	w.validateField(draft, field)
	return draft.Errors[field]
}

func (w *Wizard) validateField(draft *FormDraft, field string) {
	msg := w.rules.evaluate(field, draft.Values[field], w.now())
	if msg == "" {
		delete(draft.Errors, field)
		return
	}
	draft.Errors[field] = msg
}

// validateStep re-runs every field of the step and reports whether the
// step is clean.
func (w *Wizard) validateStep(index int) bool {
	draft := &w.drafts[index]
	clean := true
	for _, field := range w.steps[index].Fields {
		w.validateField(draft, field)
		if draft.Errors[field] != "" {
			clean = false
		}
	}
	return clean
}

// Next advances when the current step validates; otherwise the wizard
// stays put with the step's field errors populated.
func (w *Wizard) Next() bool {
	if w.busy || w.done || w.current >= len(w.steps)-1 {
		return false
	}
	if !w.validateStep(w.current) {
		return false
	}
	w.current++
	return true
}

// Previous always succeeds except on the first step.
func (w *Wizard) Previous() bool {
	if w.busy || w.done || w.current == 0 {
		return false
	}
	w.current--
	return true
}

// Finish validates the last step and runs the submit callback. While
// the callback runs, every transition is refused. Allowed on the last
// step only.
func (w *Wizard) Finish(ctx context.Context) Result {
	if w.busy {
		return failResult("submission already in progress")
	}
	if w.done {
		return failResult("wizard already finished")
	}
	if w.current != len(w.steps)-1 {
		return failResult("not on the final step")
	}

	// Submission re-validates every step, not just the last; the wizard
	// jumps back to the first step that fails.
	for i := range w.steps {
		if !w.validateStep(i) {
			w.current = i
			return failResult("the form has validation errors")
		}
	}

	values := make(map[string]string)
	for _, draft := range w.drafts {
		for k, v := range draft.Values {
			values[k] = v
		}
	}

	w.busy = true
	result := w.submit(ctx, values)
	w.busy = false

	if result.Success {
		w.done = true
	}
	return result
}
