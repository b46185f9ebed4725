package kernel

import (
	"fmt"

	"verification/internal/pkg/errs"
)

// FinalResult is the closed verdict set of a verification report.
// It is a value object over four literals; the export gate and the
// observation requirement are derived predicates, independent of the
// reviewer's sign-off flag on the report itself.
type FinalResult int

const (
	// FinalResultUnknown represents an invalid or undefined result.
	FinalResultUnknown FinalResult = iota

	// Conforme means the verification found no discrepancies.
	Conforme

	// Observado means discrepancies were found and recorded as observations.
	Observado

	// Rechazado means the verification failed outright.
	Rechazado

	// EntrevistaFaltante means the landlord interview is still missing;
	// the report cannot be exported until a follow-up update resolves it.
	EntrevistaFaltante
)

func getFinalResultStrings() map[FinalResult]string {
	return map[FinalResult]string{
		FinalResultUnknown: "UNKNOWN",
		Conforme:           "CONFORME",
		Observado:          "OBSERVADO",
		Rechazado:          "RECHAZADO",
		EntrevistaFaltante: "ENTREVISTA_ARRENDADOR_FALTANTE",
	}
}

func getValidFinalResultStrings() map[FinalResult]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[FinalResult]string{
		Conforme:           "CONFORME",
		Observado:          "OBSERVADO",
		Rechazado:          "RECHAZADO",
		EntrevistaFaltante: "ENTREVISTA_ARRENDADOR_FALTANTE",
	}
}

// Validate checks if the FinalResult is one of the four known literals.
func (r FinalResult) Validate() error {
	if _, ok := getValidFinalResultStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("final result",
			fmt.Errorf("%d is not a valid final result", r))
	}
	return nil
}

// String returns the wire name of the final result.
func (r FinalResult) String() string {
	if str, ok := getFinalResultStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// FinalResultFromString parses a wire name into a FinalResult.
func FinalResultFromString(s string) (FinalResult, error) {
	for r, str := range getValidFinalResultStrings() {
		if str == s {
			return r, nil
		}
	}
	return FinalResultUnknown, errs.NewValueIsInvalidErrorWithCause("final result",
		fmt.Errorf("%q is not a valid final result", s))
}

// IsConforme reports whether the result is CONFORME.
func (r FinalResult) IsConforme() bool {
	return r == Conforme
}

// IsObservado reports whether the result is OBSERVADO.
func (r FinalResult) IsObservado() bool {
	return r == Observado
}

// IsRechazado reports whether the result is RECHAZADO.
func (r FinalResult) IsRechazado() bool {
	return r == Rechazado
}

// RequiresLandlordInterview reports whether the landlord interview is missing.
func (r FinalResult) RequiresLandlordInterview() bool {
	return r == EntrevistaFaltante
}

// RequiresObservations reports whether the verdict implies recorded observations.
func (r FinalResult) RequiresObservations() bool {
	return r.IsObservado() || r.IsRechazado()
}

// CanExportReport reports whether a report with this result may be exported.
// Export is blocked only while the landlord interview is missing.
func (r FinalResult) CanExportReport() bool {
	return !r.RequiresLandlordInterview()
}
