package domain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord_ValidFields_CoercesNumbers(t *testing.T) {
	// Given
	fields := []string{"United States", "2023", "25462", "2.1", "3.4", "3.7", "339", "North America"}

	// When
	rec, err := ParseRecord(fields)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Record{
		Country:      "United States",
		Year:         2023,
		GDP:          25462,
		GDPGrowth:    2.1,
		Inflation:    3.4,
		Unemployment: 3.7,
		Population:   339,
		Continent:    "North America",
	}, rec)
}

func TestParseRecord_SurroundingSpaces_AreIgnoredForNumbers(t *testing.T) {
	rec, err := ParseRecord([]string{"Japan", " 2022", "4235 ", " 1.0 ", "2.5", "2.6", "125", "Asia"})

	require.NoError(t, err)
	assert.Equal(t, 2022, rec.Year)
	assert.Equal(t, int64(4235), rec.GDP)
	assert.Equal(t, 1.0, rec.GDPGrowth)
}

func TestParseRecord_Errors(t *testing.T) {
	cases := []struct {
		name      string
		fields    []string
		wantField string
		wantErr   error
	}{
		{
			name:      "gdp is not an integer",
			fields:    []string{"Japan", "2023", "4230.5", "1.9", "3.2", "2.4", "125", "Asia"},
			wantField: "gdp",
			wantErr:   strconv.ErrSyntax,
		},
		{
			name:      "year is empty",
			fields:    []string{"Japan", "", "4230", "1.9", "3.2", "2.4", "125", "Asia"},
			wantField: "year",
			wantErr:   strconv.ErrSyntax,
		},
		{
			name:      "inflation is text",
			fields:    []string{"Japan", "2023", "4230", "1.9", "high", "2.4", "125", "Asia"},
			wantField: "inflation",
			wantErr:   strconv.ErrSyntax,
		},
		{
			name:      "population overflows",
			fields:    []string{"Japan", "2023", "4230", "1.9", "3.2", "2.4", "99999999999999999999", "Asia"},
			wantField: "population",
			wantErr:   strconv.ErrRange,
		},
		{
			name:   "too few fields",
			fields: []string{"Japan", "2023", "4230"},
		},
		{
			name:   "too many fields",
			fields: []string{"Japan", "2023", "4230", "1.9", "3.2", "2.4", "125", "Asia", "extra"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseRecord(c.fields)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, c.wantField, pe.Field)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestParseError_Error_IncludesLocation(t *testing.T) {
	err := &ParseError{Path: "/data/a.csv", Line: 3, Field: "gdp", Value: "x", Err: strconv.ErrSyntax}

	assert.Equal(t, `parse record /data/a.csv:3: field gdp="x": invalid syntax`, err.Error())
}
