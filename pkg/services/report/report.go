package report

import "github.com/de-tools/macro-report/pkg/models/domain"

// Report turns grouped country data into sorted rows
type Report interface {
	// Headers returns the column labels of the label and value columns
	Headers() []string
	// Aggregate computes one row per country, sorted by the report's own policy
	Aggregate(group *domain.CountryGroup) []domain.ReportRow
}

// Build runs the report over group and pairs the result with the report headers
func Build(r Report, group *domain.CountryGroup) *domain.ReportTable {
	return &domain.ReportTable{
		Headers: r.Headers(),
		Rows:    r.Aggregate(group),
	}
}
