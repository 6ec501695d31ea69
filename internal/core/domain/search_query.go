package domain

import (
	"strings"
	"time"
)

const (
	// MaxSearchLimit caps how many rows one search may request upstream.
	MaxSearchLimit = 10000

	// MinYearBuilt and MaxYearBuilt bound the year_built range filters.
	MinYearBuilt = 1800
	MaxYearBuilt = 2030

	dateLayout = "2006-01-02"
)

// SearchParams carries raw, unvalidated search input exactly as a caller
// supplied it. Both transport entry points produce the same SearchParams.
type SearchParams struct {
	Location    string
	ListingType string

	// Time-based filters. At most one of past_days, past_hours or the
	// date_from/date_to pair may be active.
	PastDays  *int
	PastHours *int
	DateFrom  *string
	DateTo    *string

	// Property filters.
	BedsMin      *int
	BedsMax      *int
	BathsMin     *float64
	BathsMax     *float64
	SqftMin      *int
	SqftMax      *int
	PriceMin     *int
	PriceMax     *int
	YearBuiltMin *int
	YearBuiltMax *int
	LotSqftMin   *int
	LotSqftMax   *int
	PropertyType *string

	// Search options.
	Radius *float64
	SortBy *string
	Limit  *int
	Offset *int
}

// SearchQuery is the validated, canonical form of a property search. It is
// produced only by NewSearchQuery and must not be mutated afterwards.
type SearchQuery struct {
	Location    string
	ListingType ListingType

	PastDays  *int
	PastHours *int
	DateFrom  *time.Time
	DateTo    *time.Time

	BedsMin      *int
	BedsMax      *int
	BathsMin     *float64
	BathsMax     *float64
	SqftMin      *int
	SqftMax      *int
	PriceMin     *int
	PriceMax     *int
	YearBuiltMin *int
	YearBuiltMax *int
	LotSqftMin   *int
	LotSqftMax   *int

	// PropertyTypes holds the requested category. The upstream contract
	// takes a list, so a single requested type becomes a one-element slice.
	PropertyTypes []PropertyType

	Radius *float64
	SortBy *SortBy
	Limit  *int
	Offset *int
}

// NewSearchQuery validates raw search parameters and produces the canonical
// query handed to the property fetcher. Every rule lives here so that both
// transport entry points behave identically.
func NewSearchQuery(params SearchParams) (SearchQuery, error) {
	var query SearchQuery

	location := strings.TrimSpace(params.Location)
	if location == "" {
		return query, newValidationError("location", "is required")
	}
	query.Location = location

	if strings.TrimSpace(params.ListingType) == "" {
		return query, newValidationError("listing_type", "is required")
	}
	listingType, err := ParseListingType(params.ListingType)
	if err != nil {
		return query, newValidationError("listing_type", "%v", err)
	}
	query.ListingType = listingType

	if err := validateTimeWindow(params); err != nil {
		return query, err
	}
	query.PastDays = params.PastDays
	query.PastHours = params.PastHours
	if params.DateFrom != nil {
		dateFrom, dateTo, err := parseDateRange(*params.DateFrom, *params.DateTo)
		if err != nil {
			return query, err
		}
		query.DateFrom = &dateFrom
		query.DateTo = &dateTo
	}

	intRanges := []struct {
		minField, maxField string
		min, max           *int
	}{
		{"beds_min", "beds_max", params.BedsMin, params.BedsMax},
		{"sqft_min", "sqft_max", params.SqftMin, params.SqftMax},
		{"price_min", "price_max", params.PriceMin, params.PriceMax},
		{"lot_sqft_min", "lot_sqft_max", params.LotSqftMin, params.LotSqftMax},
	}
	for _, r := range intRanges {
		if r.min != nil && *r.min < 0 {
			return query, newValidationError(r.minField, "must be greater than or equal to 0")
		}
		if r.max != nil && *r.max < 0 {
			return query, newValidationError(r.maxField, "must be greater than or equal to 0")
		}
		if r.min != nil && r.max != nil && *r.min > *r.max {
			return query, newValidationError(r.minField, "cannot exceed %s", r.maxField)
		}
	}
	query.BedsMin, query.BedsMax = params.BedsMin, params.BedsMax
	query.SqftMin, query.SqftMax = params.SqftMin, params.SqftMax
	query.PriceMin, query.PriceMax = params.PriceMin, params.PriceMax
	query.LotSqftMin, query.LotSqftMax = params.LotSqftMin, params.LotSqftMax

	if params.BathsMin != nil && *params.BathsMin < 0 {
		return query, newValidationError("baths_min", "must be greater than or equal to 0")
	}
	if params.BathsMax != nil && *params.BathsMax < 0 {
		return query, newValidationError("baths_max", "must be greater than or equal to 0")
	}
	if params.BathsMin != nil && params.BathsMax != nil && *params.BathsMin > *params.BathsMax {
		return query, newValidationError("baths_min", "cannot exceed baths_max")
	}
	query.BathsMin, query.BathsMax = params.BathsMin, params.BathsMax

	if params.YearBuiltMin != nil && (*params.YearBuiltMin < MinYearBuilt || *params.YearBuiltMin > MaxYearBuilt) {
		return query, newValidationError("year_built_min", "must be between %d and %d", MinYearBuilt, MaxYearBuilt)
	}
	if params.YearBuiltMax != nil && (*params.YearBuiltMax < MinYearBuilt || *params.YearBuiltMax > MaxYearBuilt) {
		return query, newValidationError("year_built_max", "must be between %d and %d", MinYearBuilt, MaxYearBuilt)
	}
	if params.YearBuiltMin != nil && params.YearBuiltMax != nil && *params.YearBuiltMin > *params.YearBuiltMax {
		return query, newValidationError("year_built_min", "cannot exceed year_built_max")
	}
	query.YearBuiltMin, query.YearBuiltMax = params.YearBuiltMin, params.YearBuiltMax

	if params.PropertyType != nil {
		propertyType, err := ParsePropertyType(*params.PropertyType)
		if err != nil {
			return query, newValidationError("property_type", "%v", err)
		}
		query.PropertyTypes = []PropertyType{propertyType}
	}

	if params.Radius != nil && *params.Radius < 0 {
		return query, newValidationError("radius", "must be greater than or equal to 0")
	}
	query.Radius = params.Radius

	if params.SortBy != nil {
		sortBy, err := ParseSortBy(*params.SortBy)
		if err != nil {
			return query, newValidationError("sort_by", "%v", err)
		}
		query.SortBy = &sortBy
	}

	if params.Limit != nil {
		limit := *params.Limit
		if limit < 1 {
			return query, newValidationError("limit", "must be greater than or equal to 1")
		}
		if limit > MaxSearchLimit {
			limit = MaxSearchLimit
		}
		query.Limit = &limit
	}

	if params.Offset != nil && *params.Offset < 0 {
		return query, newValidationError("offset", "must be greater than or equal to 0")
	}
	query.Offset = params.Offset

	return query, nil
}

// validateTimeWindow enforces that callers pick a single way of narrowing
// results by time: a day window, an hour window, or an explicit date range.
func validateTimeWindow(params SearchParams) error {
	var supplied []string
	if params.PastDays != nil {
		supplied = append(supplied, "past_days")
	}
	if params.PastHours != nil {
		supplied = append(supplied, "past_hours")
	}
	if params.DateFrom != nil || params.DateTo != nil {
		supplied = append(supplied, "date_from/date_to")
	}
	if len(supplied) > 1 {
		return newValidationError(strings.Join(supplied, ", "), "only one time filter may be supplied")
	}

	if params.PastDays != nil && *params.PastDays < 1 {
		return newValidationError("past_days", "must be greater than or equal to 1")
	}
	if params.PastHours != nil && *params.PastHours < 1 {
		return newValidationError("past_hours", "must be greater than or equal to 1")
	}
	if (params.DateFrom == nil) != (params.DateTo == nil) {
		return newValidationError("date_from", "date_from and date_to must be supplied together")
	}

	return nil
}

func parseDateRange(fromValue, toValue string) (time.Time, time.Time, error) {
	dateFrom, err := time.Parse(dateLayout, fromValue)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("date_from", "must use the YYYY-MM-DD format")
	}
	dateTo, err := time.Parse(dateLayout, toValue)
	if err != nil {
		return time.Time{}, time.Time{}, newValidationError("date_to", "must use the YYYY-MM-DD format")
	}
	if dateFrom.After(dateTo) {
		return time.Time{}, time.Time{}, newValidationError("date_from", "cannot be after date_to")
	}
	return dateFrom, dateTo, nil
}
