package console

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wizardNow = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func validSupervisorValues() map[string]string {
	return map[string]string{
		"firstName":             "Aisha",
		"lastName":              "Nasser",
		"idNumber":              "AB1234567",
		"dateOfBirth":           "1990-03-01",
		"idExpiryDate":          "2030-01-01",
		"type":                  "Medical",
		"telephone":             "+966 50 123 4567",
		"officialEmail":         "aisha@example.gov.sa",
		"country":               "Saudi Arabia",
		"region":                "Riyadh",
		"city":                  "Riyadh",
		"address":               "12 King Fahd Road, Riyadh",
		"bankName":              "Al Rajhi Bank",
		"ibanNumber":            "SA0380000000608010167519",
		"graduationCertificate": "certificates/aisha.pdf",
		"acquiredLanguages":     "Arabic,English",
	}
}

func newTestWizard(submit SubmitFunc) *Wizard {
	w := NewSupervisorWizard(submit)
	w.now = func() time.Time { return wizardNow }
	return w
}

func fillStep(w *Wizard, values map[string]string) {
	for _, field := range w.steps[w.current].Fields {
		w.SetField(field, values[field])
	}
}

func TestSupervisorRules_FirstViolationWins(t *testing.T) {
	rules := SupervisorRules()

	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"required beats format", "officialEmail", "", "Official email is required"},
		{"format beats nothing", "officialEmail", "not-an-email", "Invalid email address"},
		{"required beats length", "address", "  ", "Address is required"},
		{"length after format", "address", "short", "Address must be at least 10 characters"},
		{"valid", "officialEmail", "a@b.co", ""},
		{"iban accepts real number", "ibanNumber", "SA0380000000608010167519", ""},
		{"iban accepts spaced number", "ibanNumber", "SA03 8000 0000 6080 1016 7519", ""},
		{"iban rejects digits only", "ibanNumber", "123456", "Invalid IBAN number"},
		{"phone rejects letters", "telephone", "05x1234567", "Invalid phone number"},
		{"phone rejects too few digits", "telephone", "(12) 34-56", "Invalid phone number"},
		{"phone accepts formatted", "telephone", "+966 (50) 123-4567", ""},
		{"id rejects symbols", "idNumber", "AB-123", "ID number should contain only letters and numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.evaluate(tt.field, tt.value, wizardNow))
		})
	}
}

func TestSupervisorRules_DateDerivations(t *testing.T) {
	rules := SupervisorRules()

	assert.Equal(t, "", rules.evaluate("dateOfBirth", "2008-06-14", wizardNow))
	// The 18th birthday itself is old enough.
	assert.Equal(t, "", rules.evaluate("dateOfBirth", "2008-06-15", wizardNow))
	assert.Equal(t, "Must be at least 18 years old",
		rules.evaluate("dateOfBirth", "2008-06-16", wizardNow))
	assert.Equal(t, "Date of birth must be in the past",
		rules.evaluate("dateOfBirth", "2027-01-01", wizardNow))

	assert.Equal(t, "", rules.evaluate("idExpiryDate", "2026-06-16", wizardNow))
	// Expiring today is already expired.
	assert.Equal(t, "ID expiry date must be in the future",
		rules.evaluate("idExpiryDate", "2026-06-15", wizardNow))
	assert.Equal(t, "ID expiry date must be in the future",
		rules.evaluate("idExpiryDate", "2026-06-14", wizardNow))
	assert.Equal(t, "Invalid date", rules.evaluate("idExpiryDate", "junk", wizardNow))
}

func TestWizard_NextBlockedByInvalidStep(t *testing.T) {
	w := newTestWizard(nil)

	ok := w.Next()

	assert.False(t, ok)
	assert.Equal(t, 1, w.CurrentStep())
	assert.Equal(t, "First name is required", w.Draft().Errors["firstName"])
}

func TestWizard_NextAdvancesWhenValid(t *testing.T) {
	w := newTestWizard(nil)
	fillStep(w, validSupervisorValues())

	require.True(t, w.Next())
	assert.Equal(t, 2, w.CurrentStep())
}

func TestWizard_PreviousRefusedOnFirstStep(t *testing.T) {
	w := newTestWizard(nil)
	assert.False(t, w.Previous())
}

func TestWizard_ValidateFieldTouchesOnlyThatField(t *testing.T) {
	w := newTestWizard(nil)

	w.SetField("firstName", "A")
	w.SetField("lastName", "")

	errs := w.Draft().Errors
	assert.Equal(t, "First name must be at least 2 characters", errs["firstName"])
	// Untouched fields carry no error yet.
	_, present := errs["idNumber"]
	assert.False(t, present)

	w.SetField("firstName", "Aisha")
	_, present = w.Draft().Errors["firstName"]
	assert.False(t, present)
}

func TestWizard_FinishOnlyOnLastStep(t *testing.T) {
	w := newTestWizard(func(ctx context.Context, values map[string]string) Result {
		return okResult()
	})

	result := w.Finish(context.Background())

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "final step")
}

func TestWizard_FinishSubmitsMergedValues(t *testing.T) {
	var got map[string]string
	w := newTestWizard(func(ctx context.Context, values map[string]string) Result {
		got = values
		return okResult()
	})

	values := validSupervisorValues()
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)

	result := w.Finish(context.Background())

	require.True(t, result.Success)
	assert.True(t, w.Done())
	assert.Equal(t, "Aisha", got["firstName"])
	assert.Equal(t, "SA0380000000608010167519", got["ibanNumber"])
	assert.Equal(t, "+966 50 123 4567", got["telephone"])
}

func TestWizard_FinishFailureStaysEditable(t *testing.T) {
	w := newTestWizard(func(ctx context.Context, values map[string]string) Result {
		return failResult("gateway rejected the record")
	})

	values := validSupervisorValues()
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)

	result := w.Finish(context.Background())

	assert.False(t, result.Success)
	assert.False(t, w.Done())
	assert.False(t, w.Busy())

	// A second attempt is permitted.
	w.submit = func(ctx context.Context, values map[string]string) Result { return okResult() }
	assert.True(t, w.Finish(context.Background()).Success)
}

func TestWizard_TransitionsRefusedWhileBusy(t *testing.T) {
	w := newTestWizard(nil)
	w.submit = func(ctx context.Context, values map[string]string) Result {
		// Re-entrant transitions during submission must be refused.
		assert.False(t, w.Next())
		assert.False(t, w.Previous())
		assert.False(t, w.Finish(ctx).Success)
		return okResult()
	}

	values := validSupervisorValues()
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)
	require.True(t, w.Next())
	fillStep(w, values)

	assert.True(t, w.Finish(context.Background()).Success)
}
