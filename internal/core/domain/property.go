package domain

// PropertyRecord is one listing row as served to API clients. Every field is
// optional: upstream rows are sparse and missing values are omitted from the
// rendered JSON rather than zero-filled. Loosely structured columns such as
// fee schedules and photo sets keep their upstream shape untouched.
type PropertyRecord struct {
	// Basic information
	PropertyURL *string `json:"property_url,omitempty"`
	PropertyID  *string `json:"property_id,omitempty"`
	ListingID   *string `json:"listing_id,omitempty"`
	MLS         *string `json:"mls,omitempty"`
	MLSID       *string `json:"mls_id,omitempty"`
	MLSStatus   *string `json:"mls_status,omitempty"`
	Status      *string `json:"status,omitempty"`
	Permalink   *string `json:"permalink,omitempty"`

	// Address details
	Street  *string `json:"street,omitempty"`
	Unit    *string `json:"unit,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`

	// Property description
	Style     *string `json:"style,omitempty"`
	Beds      *int    `json:"beds,omitempty"`
	FullBaths *int    `json:"full_baths,omitempty"`
	HalfBaths *int    `json:"half_baths,omitempty"`
	Sqft      *int    `json:"sqft,omitempty"`
	YearBuilt *int    `json:"year_built,omitempty"`
	Stories   *int    `json:"stories,omitempty"`
	Garage    *int    `json:"garage,omitempty"`
	LotSqft   *int    `json:"lot_sqft,omitempty"`
	Text      *string `json:"text,omitempty"`
	Type      *string `json:"type,omitempty"`

	// Listing details
	DaysOnMLS            *int        `json:"days_on_mls,omitempty"`
	ListPrice            *int        `json:"list_price,omitempty"`
	ListPriceMin         *int        `json:"list_price_min,omitempty"`
	ListPriceMax         *int        `json:"list_price_max,omitempty"`
	ListDate             *string     `json:"list_date,omitempty"`
	PendingDate          *string     `json:"pending_date,omitempty"`
	SoldPrice            *int        `json:"sold_price,omitempty"`
	LastSoldDate         *string     `json:"last_sold_date,omitempty"`
	LastStatusChangeDate *string     `json:"last_status_change_date,omitempty"`
	LastUpdateDate       *string     `json:"last_update_date,omitempty"`
	LastSoldPrice        *int        `json:"last_sold_price,omitempty"`
	PricePerSqft         *float64    `json:"price_per_sqft,omitempty"`
	NewConstruction      *bool       `json:"new_construction,omitempty"`
	HOAFee               *int        `json:"hoa_fee,omitempty"`
	MonthlyFees          interface{} `json:"monthly_fees,omitempty"`
	OneTimeFees          interface{} `json:"one_time_fees,omitempty"`
	EstimatedValue       *int        `json:"estimated_value,omitempty"`

	// Tax information
	TaxAssessedValue *int        `json:"tax_assessed_value,omitempty"`
	TaxHistory       interface{} `json:"tax_history,omitempty"`

	// Location details
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
	Neighborhoods *string     `json:"neighborhoods,omitempty"`
	County        *string     `json:"county,omitempty"`
	FIPSCode      *string     `json:"fips_code,omitempty"`
	ParcelNumber  *string     `json:"parcel_number,omitempty"`
	NearbySchools interface{} `json:"nearby_schools,omitempty"`

	// Agent, broker and office information
	AgentUUID         *string     `json:"agent_uuid,omitempty"`
	AgentName         *string     `json:"agent_name,omitempty"`
	AgentEmail        *string     `json:"agent_email,omitempty"`
	AgentPhone        *string     `json:"agent_phone,omitempty"`
	AgentStateLicense *string     `json:"agent_state_license,omitempty"`
	BrokerUUID        *string     `json:"broker_uuid,omitempty"`
	BrokerName        *string     `json:"broker_name,omitempty"`
	OfficeUUID        *string     `json:"office_uuid,omitempty"`
	OfficeName        *string     `json:"office_name,omitempty"`
	OfficeEmail       *string     `json:"office_email,omitempty"`
	OfficePhones      interface{} `json:"office_phones,omitempty"`

	// Additional fields
	EstimatedMonthlyRental *int        `json:"estimated_monthly_rental,omitempty"`
	Tags                   interface{} `json:"tags,omitempty"`
	Flags                  interface{} `json:"flags,omitempty"`
	Photos                 interface{} `json:"photos,omitempty"`
	PrimaryPhoto           *string     `json:"primary_photo,omitempty"`
	AltPhotos              interface{} `json:"alt_photos,omitempty"`
	OpenHouses             interface{} `json:"open_houses,omitempty"`
	Units                  interface{} `json:"units,omitempty"`
	PetPolicy              interface{} `json:"pet_policy,omitempty"`
	Parking                interface{} `json:"parking,omitempty"`
	ParkingGarage          *int        `json:"parking_garage,omitempty"`
	Terms                  interface{} `json:"terms,omitempty"`
	CurrentEstimates       interface{} `json:"current_estimates,omitempty"`
	Estimates              interface{} `json:"estimates,omitempty"`
}

// SearchResult is the formatted outcome of one property search.
type SearchResult struct {
	Count      int              `json:"count"`
	Properties []PropertyRecord `json:"properties"`
}

// NewSearchResult builds a result whose count always matches the number of
// returned records.
func NewSearchResult(records []PropertyRecord) *SearchResult {
	if records == nil {
		records = []PropertyRecord{}
	}
	return &SearchResult{Count: len(records), Properties: records}
}
