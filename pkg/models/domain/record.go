package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RecordFields is the number of columns every data line must carry
const RecordFields = 8

// Record represents one parsed row of a macroeconomic data file
type Record struct {
	Country      string
	Year         int
	GDP          int64
	GDPGrowth    float64
	Inflation    float64
	Unemployment float64
	Population   int64
	Continent    string
}

// ParseRecord builds a Record from the raw fields of one line, in file order:
// country, year, gdp, gdp_growth, inflation, unemployment, population, continent.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) != RecordFields {
		return Record{}, &ParseError{
			Err: fmt.Errorf("expected %d fields, got %d", RecordFields, len(fields)),
		}
	}

	p := fieldParser{fields: fields}
	rec := Record{
		Country:      fields[0],
		Year:         int(p.parseInt("year", 1)),
		GDP:          p.parseInt("gdp", 2),
		GDPGrowth:    p.parseFloat("gdp_growth", 3),
		Inflation:    p.parseFloat("inflation", 4),
		Unemployment: p.parseFloat("unemployment", 5),
		Population:   p.parseInt("population", 6),
		Continent:    fields[7],
	}
	if p.err != nil {
		return Record{}, p.err
	}
	return rec, nil
}

// fieldParser keeps the first conversion failure so ParseRecord reads top to bottom
type fieldParser struct {
	fields []string
	err    *ParseError
}

func (p *fieldParser) parseInt(name string, idx int) int64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(strings.TrimSpace(p.fields[idx]), 10, 64)
	if err != nil {
		p.err = &ParseError{Field: name, Value: p.fields[idx], Err: unwrapNumError(err)}
	}
	return v
}

func (p *fieldParser) parseFloat(name string, idx int) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.fields[idx]), 64)
	if err != nil {
		p.err = &ParseError{Field: name, Value: p.fields[idx], Err: unwrapNumError(err)}
	}
	return v
}

func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
