package domain

import "fmt"

// ListingType is the market status a search targets.
type ListingType string

const (
	ListingTypeForSale   ListingType = "for_sale"
	ListingTypeForRent   ListingType = "for_rent"
	ListingTypeSold      ListingType = "sold"
	ListingTypePending   ListingType = "pending"
	ListingTypeOffMarket ListingType = "off_market"
)

// ParseListingType maps a raw parameter value onto a known listing type.
func ParseListingType(value string) (ListingType, error) {
	switch ListingType(value) {
	case ListingTypeForSale, ListingTypeForRent, ListingTypeSold, ListingTypePending, ListingTypeOffMarket:
		return ListingType(value), nil
	default:
		return "", fmt.Errorf("unknown listing type %q", value)
	}
}

// PropertyType narrows a search to one building category.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single_family"
	PropertyTypeMultiFamily  PropertyType = "multi_family"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeTownhouse    PropertyType = "townhouse"
	PropertyTypeLand         PropertyType = "land"
	PropertyTypeOther        PropertyType = "other"
)

// ParsePropertyType maps a raw parameter value onto a known property type.
func ParsePropertyType(value string) (PropertyType, error) {
	switch PropertyType(value) {
	case PropertyTypeSingleFamily, PropertyTypeMultiFamily, PropertyTypeCondo,
		PropertyTypeTownhouse, PropertyTypeLand, PropertyTypeOther:
		return PropertyType(value), nil
	default:
		return "", fmt.Errorf("unknown property type %q", value)
	}
}

// SortBy selects the upstream ordering of search results.
type SortBy string

const (
	SortByListDate       SortBy = "list_date"
	SortByListPrice      SortBy = "list_price"
	SortBySqft           SortBy = "sqft"
	SortByBeds           SortBy = "beds"
	SortByBaths          SortBy = "baths"
	SortByLastUpdateDate SortBy = "last_update_date"
)

// ParseSortBy maps a raw parameter value onto a known sort field.
func ParseSortBy(value string) (SortBy, error) {
	switch SortBy(value) {
	case SortByListDate, SortByListPrice, SortBySqft, SortByBeds, SortByBaths, SortByLastUpdateDate:
		return SortBy(value), nil
	default:
		return "", fmt.Errorf("unknown sort field %q", value)
	}
}
