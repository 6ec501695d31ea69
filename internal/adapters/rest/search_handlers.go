package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VanSingco/realstate-api/internal/contextkeys"
	"github.com/VanSingco/realstate-api/internal/core/domain"
	"github.com/VanSingco/realstate-api/internal/core/port"
	"github.com/VanSingco/realstate-api/internal/core/port/usecases_port"
)

type SearchHandler struct {
	searchPropertiesUC usecases_port.SearchPropertiesPort
}

func NewSearchHandler(searchPropertiesUC usecases_port.SearchPropertiesPort) *SearchHandler {
	return &SearchHandler{
		searchPropertiesUC: searchPropertiesUC,
	}
}

// SearchPropertiesByQuery handles GET /properties/search.
func (h *SearchHandler) SearchPropertiesByQuery(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "SearchPropertiesByQuery"})

	params, err := searchParamsFromQuery(r.URL.Query())
	if err != nil {
		handlerLogger.Warn("Rejected malformed query parameters", port.Fields{"reason": err.Error()})
		respondSearchError(w, err)
		return
	}

	h.search(w, r, params, handlerLogger)
}

// SearchPropertiesByBody handles POST /properties/search. Both entry points
// accept the same parameter set and share all validation.
func (h *SearchHandler) SearchPropertiesByBody(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "SearchPropertiesByBody"})

	var request SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		handlerLogger.Warn("Rejected undecodable request body", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Failed to decode request body")
		return
	}

	h.search(w, r, request.toSearchParams(), handlerLogger)
}

func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request, params domain.SearchParams, handlerLogger port.LoggerPort) {
	query, err := domain.NewSearchQuery(params)
	if err != nil {
		handlerLogger.Warn("Rejected search parameters", port.Fields{"reason": err.Error()})
		respondSearchError(w, err)
		return
	}

	handlerLogger.Debug("Processing property search", port.Fields{
		"location":     query.Location,
		"listing_type": string(query.ListingType),
	})

	result, err := h.searchPropertiesUC.Execute(r.Context(), query)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		respondSearchError(w, err)
		return
	}

	handlerLogger.Info("Successfully served property search", port.Fields{"count": result.Count})
	RespondWithJSON(w, http.StatusOK, result)
}

// respondSearchError maps domain errors onto HTTP statuses: invalid input is
// the caller's fault, upstream failures are a bad gateway, unrepresentable
// upstream data is this service's own error.
func respondSearchError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		WriteJSONError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		WriteJSONError(w, http.StatusBadGateway, upstreamErr.Error())
		return
	}

	var formatErr *domain.FormatError
	if errors.As(err, &formatErr) {
		WriteJSONError(w, http.StatusInternalServerError, formatErr.Error())
		return
	}

	WriteJSONError(w, http.StatusInternalServerError, "An unexpected error occurred")
}
