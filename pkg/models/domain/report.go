package domain

// ReportRow represents one output line of a report
type ReportRow struct {
	Label string
	Value float64
}

// ReportTable is a complete report ready for presentation
type ReportTable struct {
	Headers []string
	Rows    []ReportRow
}
