package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() SearchParams {
	return SearchParams{
		Location:    "San Francisco, CA",
		ListingType: "for_sale",
	}
}

func TestNewSearchQuery_MinimalParams(t *testing.T) {
	query, err := NewSearchQuery(validParams())

	require.NoError(t, err)
	assert.Equal(t, "San Francisco, CA", query.Location)
	assert.Equal(t, ListingTypeForSale, query.ListingType)
	assert.Nil(t, query.Limit)
	assert.Nil(t, query.SortBy)
	assert.Empty(t, query.PropertyTypes)
}

func TestNewSearchQuery_TrimsLocation(t *testing.T) {
	params := validParams()
	params.Location = "  90210  "

	query, err := NewSearchQuery(params)

	require.NoError(t, err)
	assert.Equal(t, "90210", query.Location)
}

func TestNewSearchQuery_FullParams(t *testing.T) {
	params := SearchParams{
		Location:     "Austin, TX",
		ListingType:  "sold",
		DateFrom:     strPtr("2024-05-01"),
		DateTo:       strPtr("2024-06-01"),
		BedsMin:      intPtr(2),
		BedsMax:      intPtr(4),
		BathsMin:     floatPtr(1.5),
		BathsMax:     floatPtr(3),
		SqftMin:      intPtr(800),
		SqftMax:      intPtr(2400),
		PriceMin:     intPtr(100000),
		PriceMax:     intPtr(750000),
		YearBuiltMin: intPtr(1950),
		YearBuiltMax: intPtr(2020),
		LotSqftMin:   intPtr(1000),
		LotSqftMax:   intPtr(9000),
		PropertyType: strPtr("condo"),
		Radius:       floatPtr(5.5),
		SortBy:       strPtr("list_price"),
		Limit:        intPtr(100),
		Offset:       intPtr(200),
	}

	query, err := NewSearchQuery(params)

	require.NoError(t, err)
	assert.Equal(t, ListingTypeSold, query.ListingType)
	require.NotNil(t, query.DateFrom)
	require.NotNil(t, query.DateTo)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *query.DateFrom)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *query.DateTo)
	assert.Equal(t, []PropertyType{PropertyTypeCondo}, query.PropertyTypes)
	require.NotNil(t, query.SortBy)
	assert.Equal(t, SortByListPrice, *query.SortBy)
	require.NotNil(t, query.Limit)
	assert.Equal(t, 100, *query.Limit)
	require.NotNil(t, query.Offset)
	assert.Equal(t, 200, *query.Offset)
}

func TestNewSearchQuery_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "above the cap is truncated", limit: 25000, wantLimit: MaxSearchLimit},
		{name: "the cap itself survives", limit: MaxSearchLimit, wantLimit: MaxSearchLimit},
		{name: "below the cap is kept", limit: 42, wantLimit: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			params.Limit = intPtr(tt.limit)

			query, err := NewSearchQuery(params)

			require.NoError(t, err)
			require.NotNil(t, query.Limit)
			assert.Equal(t, tt.wantLimit, *query.Limit)
		})
	}
}

func TestNewSearchQuery_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *SearchParams)
		wantField string
	}{
		{
			name:      "missing location",
			mutate:    func(p *SearchParams) { p.Location = "   " },
			wantField: "location",
		},
		{
			name:      "missing listing type",
			mutate:    func(p *SearchParams) { p.ListingType = "" },
			wantField: "listing_type",
		},
		{
			name:      "unknown listing type",
			mutate:    func(p *SearchParams) { p.ListingType = "auction" },
			wantField: "listing_type",
		},
		{
			name: "past_days together with past_hours",
			mutate: func(p *SearchParams) {
				p.PastDays = intPtr(7)
				p.PastHours = intPtr(12)
			},
			wantField: "past_days, past_hours",
		},
		{
			name: "past_days together with a date range",
			mutate: func(p *SearchParams) {
				p.PastDays = intPtr(7)
				p.DateFrom = strPtr("2024-05-01")
				p.DateTo = strPtr("2024-06-01")
			},
			wantField: "past_days, date_from/date_to",
		},
		{
			name:      "past_days below one",
			mutate:    func(p *SearchParams) { p.PastDays = intPtr(0) },
			wantField: "past_days",
		},
		{
			name:      "past_hours below one",
			mutate:    func(p *SearchParams) { p.PastHours = intPtr(0) },
			wantField: "past_hours",
		},
		{
			name:      "date_from without date_to",
			mutate:    func(p *SearchParams) { p.DateFrom = strPtr("2024-05-01") },
			wantField: "date_from",
		},
		{
			name: "malformed date_from",
			mutate: func(p *SearchParams) {
				p.DateFrom = strPtr("05/01/2024")
				p.DateTo = strPtr("2024-06-01")
			},
			wantField: "date_from",
		},
		{
			name: "malformed date_to",
			mutate: func(p *SearchParams) {
				p.DateFrom = strPtr("2024-05-01")
				p.DateTo = strPtr("June first")
			},
			wantField: "date_to",
		},
		{
			name: "date_from after date_to",
			mutate: func(p *SearchParams) {
				p.DateFrom = strPtr("2024-07-01")
				p.DateTo = strPtr("2024-06-01")
			},
			wantField: "date_from",
		},
		{
			name:      "negative beds_min",
			mutate:    func(p *SearchParams) { p.BedsMin = intPtr(-1) },
			wantField: "beds_min",
		},
		{
			name: "beds range inverted",
			mutate: func(p *SearchParams) {
				p.BedsMin = intPtr(4)
				p.BedsMax = intPtr(2)
			},
			wantField: "beds_min",
		},
		{
			name:      "negative baths_max",
			mutate:    func(p *SearchParams) { p.BathsMax = floatPtr(-0.5) },
			wantField: "baths_max",
		},
		{
			name: "baths range inverted",
			mutate: func(p *SearchParams) {
				p.BathsMin = floatPtr(3)
				p.BathsMax = floatPtr(1)
			},
			wantField: "baths_min",
		},
		{
			name:      "negative price_min",
			mutate:    func(p *SearchParams) { p.PriceMin = intPtr(-100) },
			wantField: "price_min",
		},
		{
			name: "price range inverted",
			mutate: func(p *SearchParams) {
				p.PriceMin = intPtr(500000)
				p.PriceMax = intPtr(400000)
			},
			wantField: "price_min",
		},
		{
			name:      "year_built_min too early",
			mutate:    func(p *SearchParams) { p.YearBuiltMin = intPtr(1500) },
			wantField: "year_built_min",
		},
		{
			name:      "year_built_max too late",
			mutate:    func(p *SearchParams) { p.YearBuiltMax = intPtr(2200) },
			wantField: "year_built_max",
		},
		{
			name: "year_built range inverted",
			mutate: func(p *SearchParams) {
				p.YearBuiltMin = intPtr(2010)
				p.YearBuiltMax = intPtr(1990)
			},
			wantField: "year_built_min",
		},
		{
			name:      "unknown property type",
			mutate:    func(p *SearchParams) { p.PropertyType = strPtr("castle") },
			wantField: "property_type",
		},
		{
			name:      "negative radius",
			mutate:    func(p *SearchParams) { p.Radius = floatPtr(-1) },
			wantField: "radius",
		},
		{
			name:      "unknown sort field",
			mutate:    func(p *SearchParams) { p.SortBy = strPtr("price_per_sqft") },
			wantField: "sort_by",
		},
		{
			name:      "limit below one",
			mutate:    func(p *SearchParams) { p.Limit = intPtr(0) },
			wantField: "limit",
		},
		{
			name:      "negative offset",
			mutate:    func(p *SearchParams) { p.Offset = intPtr(-5) },
			wantField: "offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			_, err := NewSearchQuery(params)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestNewSearchQuery_SingleTimeWindowAccepted(t *testing.T) {
	params := validParams()
	params.PastHours = intPtr(48)

	query, err := NewSearchQuery(params)

	require.NoError(t, err)
	require.NotNil(t, query.PastHours)
	assert.Equal(t, 48, *query.PastHours)
	assert.Nil(t, query.PastDays)
	assert.Nil(t, query.DateFrom)
}

func TestNewSearchQuery_ErrorsDoNotUnwrapToOtherKinds(t *testing.T) {
	params := validParams()
	params.Limit = intPtr(-1)

	_, err := NewSearchQuery(params)

	require.Error(t, err)
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
