package realtorfetcher

import (
	"time"

	"github.com/VanSingco/realstate-api/internal/constants"
	"github.com/VanSingco/realstate-api/internal/core/domain"
)

// Date formats accepted by the home_search filters.
const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"
)

// Structures for the GraphQL home_search variables.
type IntRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type FloatRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type DateRange struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

type SearchLocation struct {
	Location string   `json:"location"`
	Radius   *float64 `json:"radius,omitempty"`
}

type SearchFilter struct {
	Status         []string       `json:"status"`
	SearchLocation SearchLocation `json:"search_location"`
	Type           []string       `json:"type,omitempty"`
	ListPrice      *IntRange      `json:"list_price,omitempty"`
	Beds           *IntRange      `json:"beds,omitempty"`
	Baths          *FloatRange    `json:"baths,omitempty"`
	Sqft           *IntRange      `json:"sqft,omitempty"`
	LotSqft        *IntRange      `json:"lot_sqft,omitempty"`
	YearBuilt      *IntRange      `json:"year_built,omitempty"`
	ListDate       *DateRange     `json:"list_date,omitempty"`
	SoldDate       *DateRange     `json:"sold_date,omitempty"`
}

type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type RequestVariables struct {
	Query  SearchFilter `json:"query"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
	Sort   []SortSpec   `json:"sort,omitempty"`
}

// buildSearchVariables translates the canonical query into home_search
// variables for one result page. It cannot fail: the query is validated
// before it reaches this adapter.
func buildSearchVariables(query domain.SearchQuery, now time.Time, offset, limit int) RequestVariables {
	filter := SearchFilter{
		Status: constants.ListingTypeToRealtorStatuses[query.ListingType],
		SearchLocation: SearchLocation{
			Location: query.Location,
			Radius:   query.Radius,
		},
		ListPrice: intRange(query.PriceMin, query.PriceMax),
		Beds:      intRange(query.BedsMin, query.BedsMax),
		Baths:     floatRange(query.BathsMin, query.BathsMax),
		Sqft:      intRange(query.SqftMin, query.SqftMax),
		LotSqft:   intRange(query.LotSqftMin, query.LotSqftMax),
		YearBuilt: intRange(query.YearBuiltMin, query.YearBuiltMax),
	}

	for _, propertyType := range query.PropertyTypes {
		filter.Type = append(filter.Type, string(propertyType))
	}

	// Sold searches are narrowed by the sale date, everything else by the
	// listing date.
	if window := buildDateRange(query, now); window != nil {
		if query.ListingType == domain.ListingTypeSold {
			filter.SoldDate = window
		} else {
			filter.ListDate = window
		}
	}

	variables := RequestVariables{
		Query:  filter,
		Limit:  limit,
		Offset: offset,
	}

	if query.SortBy != nil {
		variables.Sort = []SortSpec{{
			Field:     constants.SortByToRealtorField[*query.SortBy],
			Direction: constants.SortByToRealtorDirection[*query.SortBy],
		}}
	}

	return variables
}

func buildDateRange(query domain.SearchQuery, now time.Time) *DateRange {
	switch {
	case query.PastDays != nil:
		return &DateRange{Min: now.AddDate(0, 0, -*query.PastDays).Format(dateLayout)}
	case query.PastHours != nil:
		return &DateRange{Min: now.Add(-time.Duration(*query.PastHours) * time.Hour).Format(dateTimeLayout)}
	case query.DateFrom != nil && query.DateTo != nil:
		return &DateRange{
			Min: query.DateFrom.Format(dateLayout),
			Max: query.DateTo.Format(dateLayout),
		}
	default:
		return nil
	}
}

func intRange(min, max *int) *IntRange {
	if min == nil && max == nil {
		return nil
	}
	return &IntRange{Min: min, Max: max}
}

func floatRange(min, max *float64) *FloatRange {
	if min == nil && max == nil {
		return nil
	}
	return &FloatRange{Min: min, Max: max}
}
