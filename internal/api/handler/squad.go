package handler

import (
	"net/http"

	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/squad"
	"github.com/zebee/manager-api/pkg/utils"
)

func ListSquads(service squad.SquadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		squads, err := service.ListSquads(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if squads == nil {
			squads = []*domain.Squad{}
		}
		writeResponse(w, r, http.StatusOK, squads)
	}
}

func GetSquad(service squad.SquadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParamID(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		result, err := service.GetSquad(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, result)
	}
}

func CreateSquad(service squad.SquadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var req domain.SquadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateSquad(r.Context(), p, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, created)
	}
}

// UpdateSquad atende PUT (partial=false) e PATCH (partial=true)
func UpdateSquad(service squad.SquadService, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id, err := utils.ParamID(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		var req domain.SquadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		updated, err := service.UpdateSquad(r.Context(), p, id, req, partial)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, updated)
	}
}

func DeleteSquad(service squad.SquadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		id, err := utils.ParamID(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if err := service.DeleteSquad(r.Context(), p, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
