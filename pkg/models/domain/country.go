package domain

// CountryRow is the per-country part of a Record kept after grouping
type CountryRow struct {
	Year         int
	GDP          int64
	GDPGrowth    float64
	Inflation    float64
	Unemployment float64
	Population   int64
	Continent    string
}

// CountryGroup maps a country name to its rows, remembering the order
// in which countries first appeared.
type CountryGroup struct {
	order []string
	rows  map[string][]CountryRow
}

func NewCountryGroup() *CountryGroup {
	return &CountryGroup{rows: make(map[string][]CountryRow)}
}

// Append adds the record to its country bucket, creating the bucket on first use
func (g *CountryGroup) Append(rec Record) {
	if _, ok := g.rows[rec.Country]; !ok {
		g.order = append(g.order, rec.Country)
	}
	g.rows[rec.Country] = append(g.rows[rec.Country], CountryRow{
		Year:         rec.Year,
		GDP:          rec.GDP,
		GDPGrowth:    rec.GDPGrowth,
		Inflation:    rec.Inflation,
		Unemployment: rec.Unemployment,
		Population:   rec.Population,
		Continent:    rec.Continent,
	})
}

// Countries returns country names in first-appearance order
func (g *CountryGroup) Countries() []string {
	return append([]string(nil), g.order...)
}

// Rows returns a copy of the rows collected for country
func (g *CountryGroup) Rows(country string) []CountryRow {
	return append([]CountryRow(nil), g.rows[country]...)
}

func (g *CountryGroup) Len() int {
	return len(g.order)
}
