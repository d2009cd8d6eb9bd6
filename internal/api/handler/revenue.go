package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/reporting"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
)

// BulkRevenueRequest é o corpo da correção em lote de lançamentos.
type BulkRevenueRequest struct {
	Entries []*domain.RevenueEntry `json:"entries"`
}

// RecordRevenue grava o faturamento mensal de um cliente. Reenvio para
// o mesmo período substitui o valor anterior.
func RecordRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry domain.RevenueEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.RecordRevenue(&entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// BulkCorrectRevenues aplica uma correção em lote em uma única transação.
func BulkCorrectRevenues(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Entries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum lançamento informado", nil)
			return
		}

		if err := service.BulkCorrectRevenues(r.Context(), req.Entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// ListRevenues lista o faturamento lançado em um período, opcionalmente
// filtrado por zona.
func ListRevenues(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro month inválido", nil)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro year inválido", nil)
			return
		}

		zone := r.URL.Query().Get("zone")

		revenues, err := service.ListRevenues(month, year, zone)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(revenues)
	}
}
