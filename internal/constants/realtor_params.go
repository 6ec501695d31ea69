package constants

import "github.com/VanSingco/realstate-api/internal/core/domain"

// RealtorPageSize is the largest page the home_search operation serves.
const RealtorPageSize = 200

// ListingTypeToRealtorStatuses is the translator map between API listing
// types and the status values Realtor filters on.
var ListingTypeToRealtorStatuses = map[domain.ListingType][]string{
	domain.ListingTypeForSale:   {"for_sale", "ready_to_build"},
	domain.ListingTypeForRent:   {"for_rent"},
	domain.ListingTypeSold:      {"sold"},
	domain.ListingTypePending:   {"pending", "contingent"},
	domain.ListingTypeOffMarket: {"off_market"},
}

// SortByToRealtorField maps API sort options onto Realtor sort fields.
var SortByToRealtorField = map[domain.SortBy]string{
	domain.SortByListDate:       "list_date",
	domain.SortByListPrice:      "list_price",
	domain.SortBySqft:           "sqft",
	domain.SortByBeds:           "beds",
	domain.SortByBaths:          "baths",
	domain.SortByLastUpdateDate: "last_update_date",
}

// SortByToRealtorDirection picks the direction per sort field: recency sorts
// go newest-first, size and price sorts go smallest-first.
var SortByToRealtorDirection = map[domain.SortBy]string{
	domain.SortByListDate:       "desc",
	domain.SortByListPrice:      "asc",
	domain.SortBySqft:           "asc",
	domain.SortByBeds:           "asc",
	domain.SortByBaths:          "asc",
	domain.SortByLastUpdateDate: "desc",
}
