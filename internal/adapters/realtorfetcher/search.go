package realtorfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VanSingco/realstate-api/internal/constants"
	"github.com/VanSingco/realstate-api/internal/contextkeys"
	"github.com/VanSingco/realstate-api/internal/core/domain"
	"github.com/VanSingco/realstate-api/internal/core/port"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// Structures for the home_search response envelope.
type responseRoot struct {
	Data   *responseData  `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type responseData struct {
	HomeSearch *homeSearchBody `json:"home_search"`
}

type homeSearchBody struct {
	Count   int               `json:"count"`
	Total   int               `json:"total"`
	Results []json.RawMessage `json:"results"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type GraphQLRequest struct {
	Query     string           `json:"query"`
	Variables RequestVariables `json:"variables"`
}

const query = `
	query home_search($query: HomeSearchCriteria!, $limit: Int, $offset: Int, $sort: [SearchAPISort]) {
		home_search(query: $query, limit: $limit, offset: $offset, sort: $sort) {
			count
			total
			results {
				property_id
				listing_id
				href
				permalink
				status
				mls_status
				list_price
				list_price_min
				list_price_max
				list_date
				pending_date
				last_update_date
				last_status_change_date
				last_sold_price
				price_per_sqft
				days_on_market
				estimated_value
				tax_assessed_value
				estimated_monthly_rental
				source {
					id
					listing_id
				}
				description {
					style
					beds
					baths_full
					baths_half
					sqft
					lot_sqft
					year_built
					stories
					garage
					text
					type
					sold_price
					sold_date
				}
				location {
					address {
						line
						unit
						city
						state_code
						postal_code
						coordinate {
							lat
							lon
						}
					}
					county {
						name
						fips_code
					}
					neighborhoods {
						name
					}
				}
				hoa {
					fee
				}
				flags
				advertisers {
					uuid
					name
					email
					state_license
					phones {
						number
					}
					broker {
						uuid
						name
					}
					office {
						uuid
						name
						email
						phones
					}
				}
				primary_photo {
					href
				}
				photos {
					href
				}
				tax_record {
					parcel_number
				}
				monthly_fees
				one_time_fees
				tax_history
				nearby_schools
				tags
				open_houses
				units
				pet_policy
				parking
				terms
				current_estimates
				estimates
			}
		}
	}
	`

// Search runs one property search, paging through the upstream until the
// requested number of rows is collected or the upstream runs out.
func (a *RealtorFetcherAdapter) Search(ctx context.Context, searchQuery domain.SearchQuery) ([]json.RawMessage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	searchLogger := logger.WithFields(port.Fields{"component": "RealtorFetcherAdapter(Search)"})

	requested := domain.MaxSearchLimit
	if searchQuery.Limit != nil {
		requested = *searchQuery.Limit
	}
	offset := 0
	if searchQuery.Offset != nil {
		offset = *searchQuery.Offset
	}

	now := time.Now().UTC()
	var rows []json.RawMessage

	for len(rows) < requested {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("realtor adapter: search canceled: %w", err)
		}

		pageLimit := requested - len(rows)
		if pageLimit > constants.RealtorPageSize {
			pageLimit = constants.RealtorPageSize
		}

		batch, total, err := a.fetchPage(searchLogger, searchQuery, now, offset+len(rows), pageLimit)
		if err != nil {
			return nil, err
		}

		rows = append(rows, batch...)

		// A short page or the reported total both mean the upstream has
		// nothing more to serve.
		if len(batch) < pageLimit || offset+len(rows) >= total {
			break
		}
	}

	searchLogger.Info("Finished fetching search results", port.Fields{
		"location":     searchQuery.Location,
		"rows_fetched": len(rows),
	})

	return rows, nil
}

// fetchPage posts one home_search page and returns its flattened rows along
// with the total row count reported by the upstream.
func (a *RealtorFetcherAdapter) fetchPage(logger port.LoggerPort, searchQuery domain.SearchQuery, now time.Time, offset, limit int) ([]json.RawMessage, int, error) {
	collector := a.collector.Clone()
	// Clone drops callbacks, so the user-agent rotator is re-attached here.
	extensions.RandomUserAgent(collector)

	var fetchedRows []json.RawMessage
	var total int
	var responseErr error

	requestBody := GraphQLRequest{
		Query:     query,
		Variables: buildSearchVariables(searchQuery, now, offset, limit),
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, 0, fmt.Errorf("realtor adapter: failed to marshal variables: %w", err)
	}

	collector.OnRequest(func(r *colly.Request) {
		logger.Debug("Making request to fetch a result page", port.Fields{
			"url":    r.URL.String(),
			"offset": offset,
			"limit":  limit,
		})

		r.Headers.Set("Content-Type", "application/json")
	})

	collector.OnResponse(func(r *colly.Response) {
		var root responseRoot
		if err := json.Unmarshal(r.Body, &root); err != nil {
			logger.Error("failed to unmarshal search response", err, nil)
			responseErr = fmt.Errorf("realtor adapter: failed to unmarshal json: %w", err)
			return
		}

		if len(root.Errors) > 0 {
			responseErr = fmt.Errorf("realtor adapter: upstream rejected the search: %s", root.Errors[0].Message)
			return
		}

		if root.Data == nil || root.Data.HomeSearch == nil {
			responseErr = &domain.FormatError{Reason: "home_search payload is missing from the upstream response"}
			return
		}

		total = root.Data.HomeSearch.Total
		for i, raw := range root.Data.HomeSearch.Results {
			flat, err := flattenResult(raw)
			if err != nil {
				responseErr = &domain.FormatError{
					Reason: fmt.Sprintf("result %d of the page at offset %d is not tabular", i, offset),
					Err:    err,
				}
				return
			}
			fetchedRows = append(fetchedRows, flat)
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		logger.Error("Failed to fetch a result page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("realtor adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
	})

	if err := collector.PostRaw(a.baseURL, jsonData); err != nil {
		logger.Error("Failed to post search request", err, port.Fields{"url": a.baseURL})
		return nil, 0, fmt.Errorf("realtor adapter: failed to post request: %w", err)
	}
	collector.Wait()

	if responseErr != nil {
		return nil, 0, responseErr
	}

	return fetchedRows, total, nil
}
