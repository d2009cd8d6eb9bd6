package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
)

func CreateCategory(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category domain.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateCategory(&category)
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

func UpdateCategory(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da categoria inválido", nil)
			return
		}

		var category domain.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		category.ID = categoryID

		if err := service.UpdateCategory(&category); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func ListCategories(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar categorias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func DeleteCategory(service cataloging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da categoria inválido", nil)
			return
		}

		if err := service.DeleteCategory(categoryID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
