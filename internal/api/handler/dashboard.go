package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vfg2006/backoffice-api/internal/usecases/reporting"
	"github.com/vfg2006/backoffice-api/pkg/log"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

// GetDashboard retorna o painel inicial com os indicadores do último mês
// completo, a série mensal e os avisos dinâmicos.
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Dashboard()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to build summary")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// A variação sai sem arredondamento do cálculo. O arredondamento
		// para exibição acontece aqui, na borda da API.
		if summary.PercentVariation != nil {
			rounded := utils.RoundWithTwoDecimalPlace(*summary.PercentVariation)
			summary.PercentVariation = &rounded
		}

		logger.WithField("reference_period", summary.ReferencePeriod).Info("dashboard: summary built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetRevenueSeries retorna a série mensal de faturamento. O parâmetro
// months controla a janela; sem ele vale o padrão da configuração.
func GetRevenueSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		window := 0
		if monthsStr := r.URL.Query().Get("months"); monthsStr != "" {
			months, err := strconv.Atoi(monthsStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"months": monthsStr,
					"error":  err.Error(),
				}).Warn("dashboard: invalid months parameter")

				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			window = months
		}

		series, err := service.RevenueSeries(window)
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to build revenue series")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetRevenueByZone retorna o faturamento agregado por zona.
func GetRevenueByZone(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		zones, err := service.RevenueByZone()
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to build zone breakdown")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(zones); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
