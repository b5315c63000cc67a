package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"vesselBooker/internal/models"
)

// ValidationResult maps field names to human-readable messages. All
// applicable rules are evaluated; nothing short-circuits.
type ValidationResult struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors,omitempty"`
}

type draftFields struct {
	Customer  string `validate:"required"`
	Vessel    string `validate:"required"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
}

// requiredMessages maps the struct field reported by the validator to
// its response field name and message.
var requiredMessages = map[string]struct{ field, msg string }{
	"Customer":  {"customer", "Customer name is required"},
	"Vessel":    {"vessel", "Vessel name is required"},
	"StartDate": {"startDate", "Start date is required"},
	"EndDate":   {"endDate", "End date is required"},
}

// Validate checks a draft against the creation/edit rules using the
// current calendar day for the past-date rule.
func Validate(draft models.Draft) ValidationResult {
	return ValidateAt(draft, time.Now())
}

// ValidateAt is Validate with an explicit clock.
func ValidateAt(draft models.Draft, now time.Time) ValidationResult {
	fieldErrors := make(map[string]string)

	fields := draftFields{
		Customer:  strings.TrimSpace(draft.Customer),
		Vessel:    strings.TrimSpace(draft.Vessel),
		StartDate: strings.TrimSpace(draft.StartDate),
		EndDate:   strings.TrimSpace(draft.EndDate),
	}

	if err := validator.New().Struct(fields); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			for _, fe := range validateErrs {
				if m, ok := requiredMessages[fe.Field()]; ok {
					fieldErrors[m.field] = m.msg
				}
			}
		}
	}

	if fields.StartDate != "" && fields.EndDate != "" {
		start, startErr := models.ParseDate(fields.StartDate)
		end, endErr := models.ParseDate(fields.EndDate)

		if startErr == nil && endErr == nil {
			if !start.Before(end) {
				fieldErrors["endDate"] = "End date must be after start date"
			}

			// Applies to edits of historical bookings too; see DESIGN.md.
			// Compare calendar days: the clock's day in UTC against the
			// UTC midnight ParseDate yields.
			y, m, d := now.Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			if start.Before(today) {
				fieldErrors["startDate"] = "Start date cannot be in the past"
			}
		}
	}

	if len(fieldErrors) == 0 {
		return ValidationResult{Valid: true}
	}

	return ValidationResult{Valid: false, Errors: fieldErrors}
}
