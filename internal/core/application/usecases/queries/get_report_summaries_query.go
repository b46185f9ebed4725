package queries

import (
	"errors"
	"math"

	"verification/internal/pkg/guard"
)

var ErrGetReportSummariesQueryIsNotConstructed = errors.New(
	"GetReportSummariesQuery must be created via NewGetReportSummariesQuery constructor",
)

// GetReportSummariesQuery retrieves the report list with verdicts and
// completeness.
type GetReportSummariesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReportSummariesQuery creates a query to retrieve all report
// summaries.
func NewGetReportSummariesQuery() GetReportSummariesQuery {
	return GetReportSummariesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReportSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetReportSummariesQueryIsNotConstructed)
}

// GetReportSummariesQueryResponse is the read model of one report row.
// The section presence flags are scanned from the database; completeness
// is derived from them with the same seven-section formula the aggregate
// uses.
type GetReportSummariesQueryResponse struct {
	ReportID      int64
	ReportCode    string
	OrderID       int64
	FinalResult   string
	IsResultValid bool

	HasDwelling     bool
	HasZone         bool
	HasLocation     bool
	HasResidence    bool
	HasReferences   bool
	HasAttachments  bool
	HasObservations bool
}

// Completeness returns the filled percentage over the seven tracked
// sections, rounded to the nearest integer percent.
func (r GetReportSummariesQueryResponse) Completeness() int {
	present := 0
	for _, ok := range []bool{
		r.HasDwelling, r.HasZone, r.HasLocation, r.HasResidence,
		r.HasReferences, r.HasAttachments, r.HasObservations,
	} {
		if ok {
			present++
		}
	}
	return int(math.Round(float64(present) * 100 / 7))
}

// IsComplete reports whether every tracked section is present.
func (r GetReportSummariesQueryResponse) IsComplete() bool {
	return r.Completeness() == 100
}

// CanExport reports whether the report may be exported.
func (r GetReportSummariesQueryResponse) CanExport() bool {
	return r.FinalResult != "ENTREVISTA_ARRENDADOR_FALTANTE"
}
