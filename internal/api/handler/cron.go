package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/zebee/manager-api/pkg/apiErrors"
	"github.com/zebee/manager-api/pkg/log"
)

// Tipos de job aceitos em /api/admin/jobs/:type/run/
const (
	CronJobTypeActiveClients = "active-clients"
	CronJobTypeMonthlyRollup = "monthly-rollup"
	CronJobTypeAll           = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	ActiveClientsSyncService CronJob
	MonthlyRollupService     CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.ActiveClientsSyncService != nil {
		jobs[CronJobTypeActiveClients] = s.ActiveClientsSyncService
	}
	if s.MonthlyRollupService != nil {
		jobs[CronJobTypeMonthlyRollup] = s.MonthlyRollupService
	}
	return jobs
}

// RunCronJob executa manualmente um job específico
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		case CronJobTypeActiveClients, CronJobTypeMonthlyRollup:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Job não disponível", nil)
				return
			}
			job.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: active-clients, monthly-rollup, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Job disparado manualmente")

		writeResponse(w, r, http.StatusAccepted, map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeResponse(w, r, http.StatusOK, status)
	}
}
