package handler

import (
	"net/http"

	"github.com/vfg2006/spendy-api/internal/usecases/housing"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

type LinkHouseRequest struct {
	HouseCode string `json:"houseCode"`
}

func LinkHouse(service housing.HouseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		var req LinkHouseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato della richiesta non valido.", nil)
			return
		}

		message, err := service.LinkHouse(r.Context(), session, req.HouseCode)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: message})
	}
}

func GetRoommates(service housing.HouseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		roommates, err := service.Roommates(r.Context(), session, r.URL.Query().Get("houseId"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, roommates)
	}
}
