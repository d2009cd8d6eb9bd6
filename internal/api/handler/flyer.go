package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/flyering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
)

// ComposeFlyerRequest é o corpo da composição automática de volantino.
type ComposeFlyerRequest struct {
	Title      string `json:"title"`
	Background string `json:"background"`
	ProductIDs []int  `json:"product_ids"`
}

func CreateFlyer(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var flyer domain.Flyer
		if err := json.NewDecoder(r.Body).Decode(&flyer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateFlyer(&flyer)
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

// ComposeFlyer monta um volantino em grade a partir de uma seleção de
// produtos do acervo.
func ComposeFlyer(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComposeFlyerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.ComposeFlyer(req.Title, req.Background, req.ProductIDs)
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

func UpdateFlyer(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flyerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var flyer domain.Flyer
		if err := json.NewDecoder(r.Body).Decode(&flyer); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		flyer.ID = flyerID

		if err := service.UpdateFlyer(&flyer); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func GetFlyer(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flyerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		flyer, err := service.GetFlyer(flyerID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar volantino", nil)
			return
		}

		if flyer == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Volantino não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(flyer)
	}
}

func ListFlyers(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flyers, err := service.ListFlyers()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar volantini", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(flyers)
	}
}

func DeleteFlyer(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flyerID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteFlyer(flyerID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func CreateFlyerProduct(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product domain.FlyerProduct
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateFlyerProduct(&product)
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

// ListFlyerProducts lista o acervo de produtos de volantino. Com
// include_deleted=true os deletados logicamente também aparecem.
func ListFlyerProducts(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeDeleted := r.URL.Query().Get("include_deleted") == "true"

		products, err := service.ListFlyerProducts(includeDeleted)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos de volantino", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}

func DeleteFlyerProduct(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do produto inválido", nil)
			return
		}

		if err := service.DeleteFlyerProduct(productID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
