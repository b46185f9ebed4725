package kernel

import (
	"strings"

	"verification/internal/pkg/errs"
)

const (
	reportCodeMinLength = 3
	reportCodeMaxLength = 20
)

// ReportCode is the unique business key of a verification report.
// Construction trims surrounding whitespace and uppercases the code;
// the result must be between 3 and 20 characters.
type ReportCode struct {
	value string
}

// NewReportCode normalizes and validates a report code.
func NewReportCode(raw string) (ReportCode, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return ReportCode{}, errs.NewValueIsRequiredError("report code")
	}

	if len(value) < reportCodeMinLength || len(value) > reportCodeMaxLength {
		return ReportCode{}, errs.NewValueIsOutOfRangeError(
			"report code length", len(value), reportCodeMinLength, reportCodeMaxLength)
	}

	return ReportCode{value: value}, nil
}

// Value returns the normalized report code.
func (c ReportCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c ReportCode) String() string {
	return c.value
}

// IsEqual compares two report codes by normalized value.
func (c ReportCode) IsEqual(other ReportCode) bool {
	return c.value == other.value
}

// Validate returns an error for a zero-value ReportCode.
func (c ReportCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("ReportCode must be created via NewReportCode")
	}
	return nil
}
