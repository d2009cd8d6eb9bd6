package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/customering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/backoffice-api/pkg/utils"
)

func CreateCustomer(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var customer domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateCustomer(&customer)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateCustomer(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		var req domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = customerID

		if err := service.UpdateCustomer(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// GetCustomerCard retorna a ficha completa do cliente, com situação
// comercial, indicadores e histórico de atividades.
func GetCustomerCard(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		card, err := service.GetCustomerCard(customerID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar ficha do cliente", nil)
			return
		}

		if card == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Cliente não encontrado", nil)
			return
		}

		// Arredondamento só na borda da API. O cálculo interno preserva
		// a variação completa.
		if card.PercentVariation != nil {
			rounded := utils.RoundWithTwoDecimalPlace(*card.PercentVariation)
			card.PercentVariation = &rounded
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(card)
	}
}

func ListCustomers(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zone := r.URL.Query().Get("zone")

		customers, err := service.ListCustomers(zone)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(customers)
	}
}

// DeleteCustomer exclui o cliente e o histórico de faturamento associado.
func DeleteCustomer(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := customerIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		if err := service.DeleteCustomer(customerID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCustomerZones(service customering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := service.ListZones()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar zonas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(zones)
	}
}

func customerIDFromRequest(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}
