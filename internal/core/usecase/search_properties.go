package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/VanSingco/realstate-api/internal/contextkeys"
	"github.com/VanSingco/realstate-api/internal/contracts"
	"github.com/VanSingco/realstate-api/internal/core/domain"
	"github.com/VanSingco/realstate-api/internal/core/port"
)

// SearchPropertiesUseCase runs one validated search against the listing
// source and formats the raw rows into API-ready property records.
type SearchPropertiesUseCase struct {
	propertyFetcher port.PropertyFetcherPort
}

// NewSearchPropertiesUseCase creates a new instance of the use case.
func NewSearchPropertiesUseCase(fetcher port.PropertyFetcherPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{
		propertyFetcher: fetcher,
	}
}

// Execute performs the search. Fetch failures surface as upstream errors,
// rows this service cannot represent surface as format errors.
func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{
		"use_case":     "SearchProperties",
		"location":     query.Location,
		"listing_type": string(query.ListingType),
	})

	ucLogger.Debug("Searching properties", nil)

	rows, fetchErr := uc.propertyFetcher.Search(ctx, query)
	if fetchErr != nil {
		ucLogger.Error("Failed to fetch properties", fetchErr, nil)
		// Format errors keep their kind, anything else counts as upstream.
		var formatErr *domain.FormatError
		if errors.As(fetchErr, &formatErr) {
			return nil, fetchErr
		}
		return nil, &domain.UpstreamError{Err: fetchErr}
	}

	records, err := formatRows(rows)
	if err != nil {
		ucLogger.Error("Failed to format fetched rows", err, port.Fields{"rows": len(rows)})
		return nil, err
	}

	ucLogger.Info("Successfully searched properties", port.Fields{"count": len(records)})
	return domain.NewSearchResult(records), nil
}

// formatRows checks every raw row against the property record contract and
// decodes it into the API shape. One bad row fails the whole batch.
func formatRows(rows []json.RawMessage) ([]domain.PropertyRecord, error) {
	records := make([]domain.PropertyRecord, 0, len(rows))
	for i, row := range rows {
		if err := contracts.ValidateRecord(contracts.PropertyRecordType, contracts.PropertyRecordVersion, row); err != nil {
			return nil, &domain.FormatError{
				Reason: fmt.Sprintf("row %d violates the property record contract", i),
				Err:    err,
			}
		}

		var record domain.PropertyRecord
		if err := json.Unmarshal(row, &record); err != nil {
			return nil, &domain.FormatError{
				Reason: fmt.Sprintf("row %d cannot be decoded into a property record", i),
				Err:    err,
			}
		}
		records = append(records, record)
	}
	return records, nil
}
