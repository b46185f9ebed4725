package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetReportSummariesQueryHandler retrieves report summaries from the
// database. Section presence is evaluated in SQL so the read model never
// loads section payloads.
type GetReportSummariesQueryHandler struct {
	db *gorm.DB
}

// NewGetReportSummariesQueryHandler creates a handler for report summary
// queries. Requires a GORM database connection for query execution.
func NewGetReportSummariesQueryHandler(db *gorm.DB) GetReportSummariesQueryHandler {
	return GetReportSummariesQueryHandler{db: db}
}

// Handle executes the query to retrieve all report summaries.
func (h GetReportSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetReportSummariesQuery,
) ([]GetReportSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summaries := make([]GetReportSummariesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.report_code,
			r.order_id,
			r.final_result,
			r.is_result_valid,
			(r.dwelling_type IS NOT NULL) AS has_dwelling,
			(r.zone_type IS NOT NULL) AS has_zone,
			(r.latitude IS NOT NULL) AS has_location,
			(r.residence_ownership IS NOT NULL) AS has_residence,
			EXISTS (
				SELECT 1 FROM report_references rr WHERE rr.report_id = r.id
			) AS has_references,
			(COALESCE(array_length(r.attachments, 1), 0) > 0) AS has_attachments,
			(COALESCE(array_length(r.observations, 1), 0) > 0) AS has_observations
		FROM reports r
		ORDER BY r.report_code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetReportSummariesQueryResponse

		err = rows.Scan(
			&summary.ReportID,
			&summary.ReportCode,
			&summary.OrderID,
			&summary.FinalResult,
			&summary.IsResultValid,
			&summary.HasDwelling,
			&summary.HasZone,
			&summary.HasLocation,
			&summary.HasResidence,
			&summary.HasReferences,
			&summary.HasAttachments,
			&summary.HasObservations,
		)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
