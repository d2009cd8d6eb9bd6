package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/backoffice-api/internal/usecases/offering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/log"
)

// ImportOffersRequest carrega o texto colado da oferta semanal.
type ImportOffersRequest struct {
	Text string `json:"text"`
}

// BroadcastOfferRequest é o corpo do disparo de oferta por WhatsApp.
type BroadcastOfferRequest struct {
	Zone    string `json:"zone"`
	Message string `json:"message"`
}

// ImportOffers processa um texto de oferta e casa as linhas com os
// produtos do catálogo.
func ImportOffers(service offering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ImportOffersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.ImportOffers(req.Text)
		if err != nil {
			logger.WithField("error", err.Error()).Error("offers: failed to import offer text")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"matched":   len(result.Matched),
			"unmatched": len(result.Unmatched),
		}).Info("offers: offer text imported")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// BroadcastOffer envia a mensagem de oferta para os clientes com
// telefone cadastrado, opcionalmente filtrados por zona.
func BroadcastOffer(service offering.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req BroadcastOfferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.BroadcastOffer(r.Context(), req.Zone, req.Message)
		if err != nil {
			logger.WithField("error", err.Error()).Error("offers: failed to broadcast offer")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"recipients": result.Recipients,
			"sent":       result.Sent,
			"failed":     result.Failed,
		}).Info("offers: broadcast finished")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}
