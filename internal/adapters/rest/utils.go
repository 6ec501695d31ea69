package rest

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

// WriteJSONError sends a JSON response with an "error" field and the given
// status code.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// queryParser reads typed search parameters from the URL query string and
// remembers the first malformed value it meets.
type queryParser struct {
	query url.Values
	err   error
}

func newQueryParser(query url.Values) *queryParser {
	return &queryParser{query: query}
}

func (p *queryParser) parseString(key string) *string {
	value := strings.TrimSpace(p.query.Get(key))
	if value == "" {
		return nil
	}
	return &value
}

func (p *queryParser) parseInt(key string) *int {
	if p.err != nil {
		return nil
	}
	raw := strings.TrimSpace(p.query.Get(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		p.err = &domain.ValidationError{Field: key, Message: "must be an integer"}
		return nil
	}
	return &value
}

func (p *queryParser) parseFloat(key string) *float64 {
	if p.err != nil {
		return nil
	}
	raw := strings.TrimSpace(p.query.Get(key))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.err = &domain.ValidationError{Field: key, Message: "must be a number"}
		return nil
	}
	return &value
}

// Err reports the first parse failure, if any.
func (p *queryParser) Err() error {
	return p.err
}
