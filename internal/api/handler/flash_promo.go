package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/internal/domain"
	"github.com/vfg2006/backoffice-api/internal/usecases/flyering"
	"github.com/vfg2006/backoffice-api/pkg/apiErrors"
)

func CreateFlashPromo(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var promo domain.FlashPromo
		if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateFlashPromo(&promo)
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

func UpdateFlashPromo(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var promo domain.FlashPromo
		if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		promo.ID = promoID

		if err := service.UpdateFlashPromo(&promo); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func GetFlashPromo(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		promo, err := service.GetFlashPromo(promoID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar promo", nil)
			return
		}

		if promo == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Promo não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(promo)
	}
}

func ListFlashPromos(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promos, err := service.ListFlashPromos()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar promos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(promos)
	}
}

func DeleteFlashPromo(service flyering.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promoID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteFlashPromo(promoID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
