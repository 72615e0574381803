package handler

import (
	"net/http"

	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/client"
	"github.com/zebee/manager-api/pkg/utils"
)

// ListClients lista os clientes visíveis para o usuário, ordenados por loja
func ListClients(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		clients, err := service.ListClients(r.Context(), p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if clients == nil {
			clients = []*domain.Client{}
		}
		writeResponse(w, r, http.StatusOK, clients)
	}
}

func GetClient(service client.ClientService) http.HandlerFunc {
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

		result, err := service.GetClient(r.Context(), p, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, result)
	}
}

func CreateClient(service client.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principal(w, r)
		if !ok {
			return
		}

		var payload domain.ClientPayload
		if !decodeBody(w, r, &payload) {
			return
		}

		created, err := service.CreateClient(r.Context(), p, payload)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, created)
	}
}

// UpdateClient atende PUT (partial=false) e PATCH (partial=true)
func UpdateClient(service client.ClientService, partial bool) http.HandlerFunc {
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

		var payload domain.ClientPayload
		if !decodeBody(w, r, &payload) {
			return
		}

		updated, err := service.UpdateClient(r.Context(), p, id, payload, partial)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, updated)
	}
}

func DeleteClient(service client.ClientService) http.HandlerFunc {
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

		if err := service.DeleteClient(r.Context(), p, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
