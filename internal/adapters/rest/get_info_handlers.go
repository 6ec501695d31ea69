package rest

import "net/http"

const (
	serviceVersion     = "1.0.0"
	serviceDescription = "REST API for searching property listings on Realtor.com"
)

type GetInfoHandler struct {
	serviceName string
}

func NewGetInfoHandler(serviceName string) *GetInfoHandler {
	return &GetInfoHandler{
		serviceName: serviceName,
	}
}

// GetServiceInfo handles GET /.
func (h *GetInfoHandler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, ServiceInfoResponse{
		Name:        "Real Estate API",
		Version:     serviceVersion,
		Description: serviceDescription,
		Health:      "/health",
	})
}

// GetHealth handles GET /health.
func (h *GetInfoHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}
