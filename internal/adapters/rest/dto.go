package rest

import (
	"net/url"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

// SearchRequest is the body accepted by POST /properties/search. Its fields
// mirror the query parameters of the GET variant one to one.
type SearchRequest struct {
	Location    string `json:"location"`
	ListingType string `json:"listing_type"`

	PastDays  *int    `json:"past_days"`
	PastHours *int    `json:"past_hours"`
	DateFrom  *string `json:"date_from"`
	DateTo    *string `json:"date_to"`

	BedsMin      *int     `json:"beds_min"`
	BedsMax      *int     `json:"beds_max"`
	BathsMin     *float64 `json:"baths_min"`
	BathsMax     *float64 `json:"baths_max"`
	SqftMin      *int     `json:"sqft_min"`
	SqftMax      *int     `json:"sqft_max"`
	PriceMin     *int     `json:"price_min"`
	PriceMax     *int     `json:"price_max"`
	YearBuiltMin *int     `json:"year_built_min"`
	YearBuiltMax *int     `json:"year_built_max"`
	LotSqftMin   *int     `json:"lot_sqft_min"`
	LotSqftMax   *int     `json:"lot_sqft_max"`
	PropertyType *string  `json:"property_type"`

	Radius *float64 `json:"radius"`
	SortBy *string  `json:"sort_by"`
	Limit  *int     `json:"limit"`
	Offset *int     `json:"offset"`
}

func (req SearchRequest) toSearchParams() domain.SearchParams {
	return domain.SearchParams{
		Location:     req.Location,
		ListingType:  req.ListingType,
		PastDays:     req.PastDays,
		PastHours:    req.PastHours,
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
		BedsMin:      req.BedsMin,
		BedsMax:      req.BedsMax,
		BathsMin:     req.BathsMin,
		BathsMax:     req.BathsMax,
		SqftMin:      req.SqftMin,
		SqftMax:      req.SqftMax,
		PriceMin:     req.PriceMin,
		PriceMax:     req.PriceMax,
		YearBuiltMin: req.YearBuiltMin,
		YearBuiltMax: req.YearBuiltMax,
		LotSqftMin:   req.LotSqftMin,
		LotSqftMax:   req.LotSqftMax,
		PropertyType: req.PropertyType,
		Radius:       req.Radius,
		SortBy:       req.SortBy,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}
}

// searchParamsFromQuery collects the same parameter set from a GET query
// string. Malformed numeric values surface as validation errors.
func searchParamsFromQuery(query url.Values) (domain.SearchParams, error) {
	parser := newQueryParser(query)

	params := domain.SearchParams{
		Location:     query.Get("location"),
		ListingType:  query.Get("listing_type"),
		PastDays:     parser.parseInt("past_days"),
		PastHours:    parser.parseInt("past_hours"),
		DateFrom:     parser.parseString("date_from"),
		DateTo:       parser.parseString("date_to"),
		BedsMin:      parser.parseInt("beds_min"),
		BedsMax:      parser.parseInt("beds_max"),
		BathsMin:     parser.parseFloat("baths_min"),
		BathsMax:     parser.parseFloat("baths_max"),
		SqftMin:      parser.parseInt("sqft_min"),
		SqftMax:      parser.parseInt("sqft_max"),
		PriceMin:     parser.parseInt("price_min"),
		PriceMax:     parser.parseInt("price_max"),
		YearBuiltMin: parser.parseInt("year_built_min"),
		YearBuiltMax: parser.parseInt("year_built_max"),
		LotSqftMin:   parser.parseInt("lot_sqft_min"),
		LotSqftMax:   parser.parseInt("lot_sqft_max"),
		PropertyType: parser.parseString("property_type"),
		Radius:       parser.parseFloat("radius"),
		SortBy:       parser.parseString("sort_by"),
		Limit:        parser.parseInt("limit"),
		Offset:       parser.parseInt("offset"),
	}

	if err := parser.Err(); err != nil {
		return domain.SearchParams{}, err
	}
	return params, nil
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ServiceInfoResponse is the payload of GET /.
type ServiceInfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Health      string `json:"health"`
}
