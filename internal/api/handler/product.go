package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
)

// LinkProductRequest é o corpo do vínculo entre cliente e produto.
type LinkProductRequest struct {
	ProductID    int              `json:"product_id"`
	Worked       bool             `json:"worked"`
	CurrentPrice *decimal.Decimal `json:"current_price"`
	OfferPrice   *decimal.Decimal `json:"offer_price"`
}

func CreateProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateProduct(&product)
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

func UpdateProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		product.ID = productID

		if err := service.UpdateProduct(&product); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func GetProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		product, err := service.GetProduct(productID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Produto não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(product)
	}
}

func ListProducts(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

// GetCatalog retorna os produtos agrupados por categoria.
func GetCatalog(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := service.ListCatalog()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar catálogo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(catalog)
	}
}

func DeleteProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		if err := service.DeleteProduct(productID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// LinkProduct vincula um produto ao cliente, com a marcação de
// trabalhado e os preços praticados.
func LinkProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		var req LinkProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.LinkProduct(customerID, req.ProductID, req.Worked, req.CurrentPrice, req.OfferPrice); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func UnlinkProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		customerID, err := strconv.Atoi(params.ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		productID, err := strconv.Atoi(params.ByName("product_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		if err := service.UnlinkProduct(customerID, productID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCustomersByProduct lista os clientes que trabalham um produto.
func ListCustomersByProduct(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		customers, err := service.ListCustomersByProduct(productID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes do produto", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(customers)
	}
}
