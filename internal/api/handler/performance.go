package handler

import (
	"net/http"

	"github.com/zebee/manager-api/internal/domain"
	"github.com/zebee/manager-api/internal/usecases/performance"
	"github.com/zebee/manager-api/pkg/utils"
)

func ListRevenueHistory(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := service.ListRevenueHistory(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if history == nil {
			history = []*domain.RevenueHistory{}
		}
		writeResponse(w, r, http.StatusOK, history)
	}
}

func GetRevenueHistory(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParamID(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		entry, err := service.GetRevenueHistory(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, entry)
	}
}

// CreateRevenueHistory é a ingestão administrativa do histórico mensal
func CreateRevenueHistory(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RevenueHistoryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateRevenueHistory(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, created)
	}
}

func ListSquadPerformance(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		performances, err := service.ListSquadPerformance(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if performances == nil {
			performances = []*domain.SquadPerformance{}
		}
		writeResponse(w, r, http.StatusOK, performances)
	}
}

func GetSquadPerformance(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.ParamID(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		entry, err := service.GetSquadPerformance(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, entry)
	}
}

func CreateSquadPerformance(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SquadPerformanceRequest
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateSquadPerformance(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, created)
	}
}
