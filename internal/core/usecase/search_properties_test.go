package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

type fakePropertyFetcher struct {
	rows     []json.RawMessage
	err      error
	gotQuery domain.SearchQuery
	calls    int
}

func (f *fakePropertyFetcher) Search(_ context.Context, query domain.SearchQuery) ([]json.RawMessage, error) {
	f.calls++
	f.gotQuery = query
	return f.rows, f.err
}

func testQuery() domain.SearchQuery {
	return domain.SearchQuery{
		Location:    "Austin, TX",
		ListingType: domain.ListingTypeForSale,
	}
}

func TestExecute_FormatsFetchedRows(t *testing.T) {
	fetcher := &fakePropertyFetcher{
		rows: []json.RawMessage{
			json.RawMessage(`{"property_id":"p-1","beds":3,"list_price":450000,"city":"Austin"}`),
			json.RawMessage(`{"property_id":"p-2","beds":null,"alt_photos":["a.jpg","b.jpg"]}`),
		},
	}
	uc := NewSearchPropertiesUseCase(fetcher)

	result, err := uc.Execute(context.Background(), testQuery())

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, "Austin, TX", fetcher.gotQuery.Location)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Properties, 2)

	first := result.Properties[0]
	require.NotNil(t, first.PropertyID)
	assert.Equal(t, "p-1", *first.PropertyID)
	require.NotNil(t, first.Beds)
	assert.Equal(t, 3, *first.Beds)
	require.NotNil(t, first.ListPrice)
	assert.Equal(t, 450000, *first.ListPrice)

	second := result.Properties[1]
	assert.Nil(t, second.Beds)
	assert.Equal(t, []interface{}{"a.jpg", "b.jpg"}, second.AltPhotos)
}

func TestExecute_EmptyUpstreamYieldsEmptyResult(t *testing.T) {
	uc := NewSearchPropertiesUseCase(&fakePropertyFetcher{})

	result, err := uc.Execute(context.Background(), testQuery())

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Properties)
}

func TestExecute_WrapsFetchFailuresAsUpstream(t *testing.T) {
	fetchErr := errors.New("connection reset")
	uc := NewSearchPropertiesUseCase(&fakePropertyFetcher{err: fetchErr})

	result, err := uc.Execute(context.Background(), testQuery())

	assert.Nil(t, result)
	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.ErrorIs(t, err, fetchErr)
}

func TestExecute_KeepsFormatErrorsFromFetcher(t *testing.T) {
	fetchErr := &domain.FormatError{Reason: "home_search payload is missing from the upstream response"}
	uc := NewSearchPropertiesUseCase(&fakePropertyFetcher{err: fetchErr})

	_, err := uc.Execute(context.Background(), testQuery())

	var formatErr *domain.FormatError
	require.ErrorAs(t, err, &formatErr)
	var upstreamErr *domain.UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestExecute_RejectsRowsViolatingTheRecordContract(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "wrongly typed column", row: `{"property_id":"p-1","beds":"studio"}`},
		{name: "row is not an object", row: `["p-1","p-2"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakePropertyFetcher{rows: []json.RawMessage{json.RawMessage(tt.row)}}
			uc := NewSearchPropertiesUseCase(fetcher)

			result, err := uc.Execute(context.Background(), testQuery())

			assert.Nil(t, result)
			var formatErr *domain.FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Contains(t, formatErr.Reason, "row 0")
		})
	}
}
