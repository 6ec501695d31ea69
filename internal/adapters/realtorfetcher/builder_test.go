package realtorfetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

var fixedNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestBuildSearchVariables_MinimalQuery(t *testing.T) {
	query := domain.SearchQuery{
		Location:    "Phoenix, AZ",
		ListingType: domain.ListingTypeForSale,
	}

	vars := buildSearchVariables(query, fixedNow, 0, 200)

	assert.Equal(t, []string{"for_sale", "ready_to_build"}, vars.Query.Status)
	assert.Equal(t, "Phoenix, AZ", vars.Query.SearchLocation.Location)
	assert.Nil(t, vars.Query.SearchLocation.Radius)
	assert.Nil(t, vars.Query.ListPrice)
	assert.Nil(t, vars.Query.Beds)
	assert.Nil(t, vars.Query.ListDate)
	assert.Nil(t, vars.Query.SoldDate)
	assert.Empty(t, vars.Query.Type)
	assert.Empty(t, vars.Sort)
	assert.Equal(t, 200, vars.Limit)
	assert.Equal(t, 0, vars.Offset)
}

func TestBuildSearchVariables_StatusTranslation(t *testing.T) {
	tests := []struct {
		listingType domain.ListingType
		want        []string
	}{
		{listingType: domain.ListingTypeForSale, want: []string{"for_sale", "ready_to_build"}},
		{listingType: domain.ListingTypeForRent, want: []string{"for_rent"}},
		{listingType: domain.ListingTypeSold, want: []string{"sold"}},
		{listingType: domain.ListingTypePending, want: []string{"pending", "contingent"}},
		{listingType: domain.ListingTypeOffMarket, want: []string{"off_market"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.listingType), func(t *testing.T) {
			query := domain.SearchQuery{Location: "Phoenix, AZ", ListingType: tt.listingType}

			vars := buildSearchVariables(query, fixedNow, 0, 200)

			assert.Equal(t, tt.want, vars.Query.Status)
		})
	}
}

func TestBuildSearchVariables_Filters(t *testing.T) {
	radius := 3.5
	query := domain.SearchQuery{
		Location:      "Phoenix, AZ",
		ListingType:   domain.ListingTypeForSale,
		Radius:        &radius,
		BedsMin:       intPtr(2),
		BathsMax:      floatPtr(2.5),
		PriceMin:      intPtr(150000),
		PriceMax:      intPtr(600000),
		SqftMin:       intPtr(900),
		LotSqftMax:    intPtr(8000),
		YearBuiltMin:  intPtr(1980),
		YearBuiltMax:  intPtr(2015),
		PropertyTypes: []domain.PropertyType{domain.PropertyTypeCondo},
	}

	vars := buildSearchVariables(query, fixedNow, 0, 200)

	require.NotNil(t, vars.Query.SearchLocation.Radius)
	assert.Equal(t, 3.5, *vars.Query.SearchLocation.Radius)

	require.NotNil(t, vars.Query.Beds)
	assert.Equal(t, 2, *vars.Query.Beds.Min)
	assert.Nil(t, vars.Query.Beds.Max)

	require.NotNil(t, vars.Query.Baths)
	assert.Nil(t, vars.Query.Baths.Min)
	assert.Equal(t, 2.5, *vars.Query.Baths.Max)

	require.NotNil(t, vars.Query.ListPrice)
	assert.Equal(t, 150000, *vars.Query.ListPrice.Min)
	assert.Equal(t, 600000, *vars.Query.ListPrice.Max)

	require.NotNil(t, vars.Query.Sqft)
	assert.Equal(t, 900, *vars.Query.Sqft.Min)

	require.NotNil(t, vars.Query.LotSqft)
	assert.Equal(t, 8000, *vars.Query.LotSqft.Max)

	require.NotNil(t, vars.Query.YearBuilt)
	assert.Equal(t, 1980, *vars.Query.YearBuilt.Min)
	assert.Equal(t, 2015, *vars.Query.YearBuilt.Max)

	assert.Equal(t, []string{"condo"}, vars.Query.Type)
}

func TestBuildSearchVariables_TimeWindows(t *testing.T) {
	t.Run("past_days narrows the listing date", func(t *testing.T) {
		query := domain.SearchQuery{
			Location:    "Phoenix, AZ",
			ListingType: domain.ListingTypeForSale,
			PastDays:    intPtr(7),
		}

		vars := buildSearchVariables(query, fixedNow, 0, 200)

		require.NotNil(t, vars.Query.ListDate)
		assert.Equal(t, "2024-06-08", vars.Query.ListDate.Min)
		assert.Empty(t, vars.Query.ListDate.Max)
		assert.Nil(t, vars.Query.SoldDate)
	})

	t.Run("past_hours keeps the time of day", func(t *testing.T) {
		query := domain.SearchQuery{
			Location:    "Phoenix, AZ",
			ListingType: domain.ListingTypeForSale,
			PastHours:   intPtr(12),
		}

		vars := buildSearchVariables(query, fixedNow, 0, 200)

		require.NotNil(t, vars.Query.ListDate)
		assert.Equal(t, "2024-06-14T22:30:00Z", vars.Query.ListDate.Min)
	})

	t.Run("date range sets both bounds", func(t *testing.T) {
		from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		query := domain.SearchQuery{
			Location:    "Phoenix, AZ",
			ListingType: domain.ListingTypeForSale,
			DateFrom:    &from,
			DateTo:      &to,
		}

		vars := buildSearchVariables(query, fixedNow, 0, 200)

		require.NotNil(t, vars.Query.ListDate)
		assert.Equal(t, "2024-05-01", vars.Query.ListDate.Min)
		assert.Equal(t, "2024-06-01", vars.Query.ListDate.Max)
	})

	t.Run("sold searches narrow the sale date instead", func(t *testing.T) {
		query := domain.SearchQuery{
			Location:    "Phoenix, AZ",
			ListingType: domain.ListingTypeSold,
			PastDays:    intPtr(30),
		}

		vars := buildSearchVariables(query, fixedNow, 0, 200)

		assert.Nil(t, vars.Query.ListDate)
		require.NotNil(t, vars.Query.SoldDate)
		assert.Equal(t, "2024-05-16", vars.Query.SoldDate.Min)
	})
}

func TestBuildSearchVariables_Sort(t *testing.T) {
	tests := []struct {
		sortBy        domain.SortBy
		wantField     string
		wantDirection string
	}{
		{sortBy: domain.SortByListDate, wantField: "list_date", wantDirection: "desc"},
		{sortBy: domain.SortByLastUpdateDate, wantField: "last_update_date", wantDirection: "desc"},
		{sortBy: domain.SortByListPrice, wantField: "list_price", wantDirection: "asc"},
		{sortBy: domain.SortBySqft, wantField: "sqft", wantDirection: "asc"},
		{sortBy: domain.SortByBeds, wantField: "beds", wantDirection: "asc"},
		{sortBy: domain.SortByBaths, wantField: "baths", wantDirection: "asc"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			sortBy := tt.sortBy
			query := domain.SearchQuery{
				Location:    "Phoenix, AZ",
				ListingType: domain.ListingTypeForSale,
				SortBy:      &sortBy,
			}

			vars := buildSearchVariables(query, fixedNow, 0, 200)

			require.Len(t, vars.Sort, 1)
			assert.Equal(t, tt.wantField, vars.Sort[0].Field)
			assert.Equal(t, tt.wantDirection, vars.Sort[0].Direction)
		})
	}
}

func TestBuildSearchVariables_Paging(t *testing.T) {
	query := domain.SearchQuery{Location: "Phoenix, AZ", ListingType: domain.ListingTypeForSale}

	vars := buildSearchVariables(query, fixedNow, 400, 150)

	assert.Equal(t, 400, vars.Offset)
	assert.Equal(t, 150, vars.Limit)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
