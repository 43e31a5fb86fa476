package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryGroup_Append_KeepsFirstAppearanceOrder(t *testing.T) {
	// Given
	g := NewCountryGroup()

	// When
	g.Append(Record{Country: "Japan", Year: 2023, GDP: 4230})
	g.Append(Record{Country: "Mexico", Year: 2023, GDP: 1414})
	g.Append(Record{Country: "Japan", Year: 2022, GDP: 4235})

	// Then
	assert.Equal(t, []string{"Japan", "Mexico"}, g.Countries())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []CountryRow{
		{Year: 2023, GDP: 4230},
		{Year: 2022, GDP: 4235},
	}, g.Rows("Japan"))
}

func TestCountryGroup_Append_CopiesEveryField(t *testing.T) {
	g := NewCountryGroup()
	g.Append(Record{
		Country:      "Mexico",
		Year:         2022,
		GDP:          1274,
		GDPGrowth:    3.9,
		Inflation:    7.9,
		Unemployment: 3.3,
		Population:   127,
		Continent:    "North America",
	})

	assert.Equal(t, []CountryRow{{
		Year:         2022,
		GDP:          1274,
		GDPGrowth:    3.9,
		Inflation:    7.9,
		Unemployment: 3.3,
		Population:   127,
		Continent:    "North America",
	}}, g.Rows("Mexico"))
}

func TestCountryGroup_Countries_ReturnsCopy(t *testing.T) {
	g := NewCountryGroup()
	g.Append(Record{Country: "Japan"})

	countries := g.Countries()
	countries[0] = "changed"

	assert.Equal(t, []string{"Japan"}, g.Countries())
	assert.Nil(t, g.Rows("changed"))
}

func TestCountryGroup_Rows_ReturnsCopy(t *testing.T) {
	// Given
	g := NewCountryGroup()
	g.Append(Record{Country: "Japan", GDP: 4230})

	// When
	rows := g.Rows("Japan")
	rows[0].GDP = 0
	_ = append(rows, CountryRow{GDP: 1})

	// Then
	assert.Equal(t, []CountryRow{{GDP: 4230}}, g.Rows("Japan"))
}
