package realtorfetcher

import (
	"encoding/json"
	"fmt"
	"strings"
)

const propertyURLPrefix = "https://www.realtor.com/realestateandhomes-detail/"

// Structures for the nested home_search result rows.

type searchResultItem struct {
	PropertyID           *string  `json:"property_id"`
	ListingID            *string  `json:"listing_id"`
	Href                 *string  `json:"href"`
	Permalink            *string  `json:"permalink"`
	Status               *string  `json:"status"`
	MLSStatus            *string  `json:"mls_status"`
	ListPrice            *int     `json:"list_price"`
	ListPriceMin         *int     `json:"list_price_min"`
	ListPriceMax         *int     `json:"list_price_max"`
	ListDate             *string  `json:"list_date"`
	PendingDate          *string  `json:"pending_date"`
	LastUpdateDate       *string  `json:"last_update_date"`
	LastStatusChangeDate *string  `json:"last_status_change_date"`
	LastSoldPrice        *int     `json:"last_sold_price"`
	PricePerSqft         *float64 `json:"price_per_sqft"`
	DaysOnMarket         *int     `json:"days_on_market"`
	EstimatedValue       *int     `json:"estimated_value"`
	TaxAssessedValue     *int     `json:"tax_assessed_value"`
	EstimatedRental      *int     `json:"estimated_monthly_rental"`
	ParkingGarage        *int     `json:"parking_garage"`

	Source       *sourceInfo   `json:"source"`
	Description  *description  `json:"description"`
	Location     *location     `json:"location"`
	HOA          *hoaInfo      `json:"hoa"`
	Flags        *listingFlags `json:"flags"`
	Advertisers  []advertiser  `json:"advertisers"`
	PrimaryPhoto *photo        `json:"primary_photo"`
	Photos       []photo       `json:"photos"`
	TaxRecord    *taxRecord    `json:"tax_record"`

	// Loosely structured columns served to clients as-is.
	MonthlyFees      json.RawMessage `json:"monthly_fees"`
	OneTimeFees      json.RawMessage `json:"one_time_fees"`
	TaxHistory       json.RawMessage `json:"tax_history"`
	NearbySchools    json.RawMessage `json:"nearby_schools"`
	Tags             json.RawMessage `json:"tags"`
	OpenHouses       json.RawMessage `json:"open_houses"`
	Units            json.RawMessage `json:"units"`
	PetPolicy        json.RawMessage `json:"pet_policy"`
	Parking          json.RawMessage `json:"parking"`
	Terms            json.RawMessage `json:"terms"`
	CurrentEstimates json.RawMessage `json:"current_estimates"`
	Estimates        json.RawMessage `json:"estimates"`
	RawFlags         json.RawMessage `json:"-"`
}

type sourceInfo struct {
	ID        *string `json:"id"`
	ListingID *string `json:"listing_id"`
}

type description struct {
	Style     *string `json:"style"`
	Beds      *int    `json:"beds"`
	BathsFull *int    `json:"baths_full"`
	BathsHalf *int    `json:"baths_half"`
	Sqft      *int    `json:"sqft"`
	LotSqft   *int    `json:"lot_sqft"`
	YearBuilt *int    `json:"year_built"`
	Stories   *int    `json:"stories"`
	Garage    *int    `json:"garage"`
	Text      *string `json:"text"`
	Type      *string `json:"type"`
	SoldPrice *int    `json:"sold_price"`
	SoldDate  *string `json:"sold_date"`
}

type location struct {
	Address       *address       `json:"address"`
	County        *county        `json:"county"`
	Neighborhoods []neighborhood `json:"neighborhoods"`
}

type address struct {
	Line       *string     `json:"line"`
	Unit       *string     `json:"unit"`
	City       *string     `json:"city"`
	StateCode  *string     `json:"state_code"`
	PostalCode *string     `json:"postal_code"`
	Coordinate *coordinate `json:"coordinate"`
}

type coordinate struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type county struct {
	Name     *string `json:"name"`
	FIPSCode *string `json:"fips_code"`
}

type neighborhood struct {
	Name *string `json:"name"`
}

type hoaInfo struct {
	Fee *int `json:"fee"`
}

type listingFlags struct {
	IsNewConstruction *bool `json:"is_new_construction"`
}

type advertiser struct {
	UUID         *string       `json:"uuid"`
	Name         *string       `json:"name"`
	Email        *string       `json:"email"`
	StateLicense *string       `json:"state_license"`
	Phones       []phoneNumber `json:"phones"`
	Broker       *brokerInfo   `json:"broker"`
	Office       *officeInfo   `json:"office"`
}

type phoneNumber struct {
	Number *string `json:"number"`
}

type brokerInfo struct {
	UUID *string `json:"uuid"`
	Name *string `json:"name"`
}

type officeInfo struct {
	UUID   *string         `json:"uuid"`
	Name   *string         `json:"name"`
	Email  *string         `json:"email"`
	Phones json.RawMessage `json:"phones"`
}

type photo struct {
	Href *string `json:"href"`
}

type taxRecord struct {
	ParcelNumber *string `json:"parcel_number"`
}

// flattenResult converts one nested home_search row into the flat, tabular
// row shape the rest of the service consumes.
func flattenResult(raw json.RawMessage) (json.RawMessage, error) {
	var item searchResultItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("result row is not a home_search object: %w", err)
	}

	// flags stays a pass-through column even though one of its members is
	// promoted to new_construction.
	var probe struct {
		Flags json.RawMessage `json:"flags"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil {
		item.RawFlags = probe.Flags
	}

	row := make(map[string]interface{})

	putString(row, "property_url", propertyURL(item))
	putString(row, "property_id", item.PropertyID)
	putString(row, "listing_id", item.ListingID)
	putString(row, "status", item.Status)
	putString(row, "mls_status", item.MLSStatus)
	putString(row, "permalink", item.Permalink)
	putInt(row, "list_price", item.ListPrice)
	putInt(row, "list_price_min", item.ListPriceMin)
	putInt(row, "list_price_max", item.ListPriceMax)
	putString(row, "list_date", item.ListDate)
	putString(row, "pending_date", item.PendingDate)
	putString(row, "last_update_date", item.LastUpdateDate)
	putString(row, "last_status_change_date", item.LastStatusChangeDate)
	putInt(row, "last_sold_price", item.LastSoldPrice)
	putFloat(row, "price_per_sqft", item.PricePerSqft)
	putInt(row, "days_on_mls", item.DaysOnMarket)
	putInt(row, "estimated_value", item.EstimatedValue)
	putInt(row, "tax_assessed_value", item.TaxAssessedValue)
	putInt(row, "estimated_monthly_rental", item.EstimatedRental)
	putInt(row, "parking_garage", item.ParkingGarage)

	if item.Source != nil {
		putString(row, "mls", item.Source.ID)
		putString(row, "mls_id", item.Source.ListingID)
	}

	if d := item.Description; d != nil {
		putString(row, "style", d.Style)
		putInt(row, "beds", d.Beds)
		putInt(row, "full_baths", d.BathsFull)
		putInt(row, "half_baths", d.BathsHalf)
		putInt(row, "sqft", d.Sqft)
		putInt(row, "lot_sqft", d.LotSqft)
		putInt(row, "year_built", d.YearBuilt)
		putInt(row, "stories", d.Stories)
		putInt(row, "garage", d.Garage)
		putString(row, "text", d.Text)
		putString(row, "type", d.Type)
		putInt(row, "sold_price", d.SoldPrice)
		putString(row, "last_sold_date", d.SoldDate)
	}

	if l := item.Location; l != nil {
		if a := l.Address; a != nil {
			putString(row, "street", a.Line)
			putString(row, "unit", a.Unit)
			putString(row, "city", a.City)
			putString(row, "state", a.StateCode)
			putString(row, "zip_code", a.PostalCode)
			if a.Coordinate != nil {
				putFloat(row, "latitude", a.Coordinate.Lat)
				putFloat(row, "longitude", a.Coordinate.Lon)
			}
		}
		if l.County != nil {
			putString(row, "county", l.County.Name)
			putString(row, "fips_code", l.County.FIPSCode)
		}
		if names := neighborhoodNames(l.Neighborhoods); names != "" {
			row["neighborhoods"] = names
		}
	}

	if item.HOA != nil {
		putInt(row, "hoa_fee", item.HOA.Fee)
	}
	if item.Flags != nil {
		putBool(row, "new_construction", item.Flags.IsNewConstruction)
	}
	if item.TaxRecord != nil {
		putString(row, "parcel_number", item.TaxRecord.ParcelNumber)
	}

	if len(item.Advertisers) > 0 {
		agent := item.Advertisers[0]
		putString(row, "agent_uuid", agent.UUID)
		putString(row, "agent_name", agent.Name)
		putString(row, "agent_email", agent.Email)
		putString(row, "agent_state_license", agent.StateLicense)
		if len(agent.Phones) > 0 {
			putString(row, "agent_phone", agent.Phones[0].Number)
		}
		if agent.Broker != nil {
			putString(row, "broker_uuid", agent.Broker.UUID)
			putString(row, "broker_name", agent.Broker.Name)
		}
		if agent.Office != nil {
			putString(row, "office_uuid", agent.Office.UUID)
			putString(row, "office_name", agent.Office.Name)
			putString(row, "office_email", agent.Office.Email)
			putRaw(row, "office_phones", agent.Office.Phones)
		}
	}

	if item.PrimaryPhoto != nil {
		putString(row, "primary_photo", item.PrimaryPhoto.Href)
	}
	if hrefs := photoHrefs(item.Photos); len(hrefs) > 0 {
		row["alt_photos"] = hrefs
	}

	putRaw(row, "monthly_fees", item.MonthlyFees)
	putRaw(row, "one_time_fees", item.OneTimeFees)
	putRaw(row, "tax_history", item.TaxHistory)
	putRaw(row, "nearby_schools", item.NearbySchools)
	putRaw(row, "tags", item.Tags)
	putRaw(row, "flags", item.RawFlags)
	putRaw(row, "open_houses", item.OpenHouses)
	putRaw(row, "units", item.Units)
	putRaw(row, "pet_policy", item.PetPolicy)
	putRaw(row, "parking", item.Parking)
	putRaw(row, "terms", item.Terms)
	putRaw(row, "current_estimates", item.CurrentEstimates)
	putRaw(row, "estimates", item.Estimates)

	flat, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flattened row: %w", err)
	}
	return flat, nil
}

// propertyURL prefers the ready-made link and falls back to building one
// from the permalink.
func propertyURL(item searchResultItem) *string {
	if item.Href != nil && *item.Href != "" {
		return item.Href
	}
	if item.Permalink != nil && *item.Permalink != "" {
		u := propertyURLPrefix + *item.Permalink
		return &u
	}
	return nil
}

func neighborhoodNames(neighborhoods []neighborhood) string {
	var names []string
	for _, n := range neighborhoods {
		if n.Name != nil && *n.Name != "" {
			names = append(names, *n.Name)
		}
	}
	return strings.Join(names, ", ")
}

func photoHrefs(photos []photo) []string {
	var hrefs []string
	for _, p := range photos {
		if p.Href != nil && *p.Href != "" {
			hrefs = append(hrefs, *p.Href)
		}
	}
	return hrefs
}

func putString(row map[string]interface{}, key string, value *string) {
	if value != nil {
		row[key] = *value
	}
}

func putInt(row map[string]interface{}, key string, value *int) {
	if value != nil {
		row[key] = *value
	}
}

func putFloat(row map[string]interface{}, key string, value *float64) {
	if value != nil {
		row[key] = *value
	}
}

func putBool(row map[string]interface{}, key string, value *bool) {
	if value != nil {
		row[key] = *value
	}
}

func putRaw(row map[string]interface{}, key string, value json.RawMessage) {
	if len(value) > 0 && string(value) != "null" {
		row[key] = value
	}
}
