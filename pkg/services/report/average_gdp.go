package report

import (
	"sort"
	"strconv"

	"github.com/de-tools/macro-report/pkg/models/domain"
)

const AverageGDPName = "average_gdp"

// AverageGDP reports the mean GDP of every country, highest first
type AverageGDP struct{}

func NewAverageGDP() Report {
	return AverageGDP{}
}

func (AverageGDP) Headers() []string {
	return []string{"country", "gdp"}
}

func (AverageGDP) Aggregate(group *domain.CountryGroup) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, group.Len())
	for _, country := range group.Countries() {
		values := group.Rows(country)
		if len(values) == 0 {
			continue
		}

		var sum float64
		for _, v := range values {
			sum += float64(v.GDP)
		}
		rows = append(rows, domain.ReportRow{
			Label: country,
			Value: round2(sum / float64(len(values))),
		})
	}

	// equal means keep first-appearance order
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value > rows[j].Value
	})
	return rows
}

// round2 rounds to two decimals based on the exact binary value of v,
// so 2.675 (stored as 2.67499...) becomes 2.67.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
