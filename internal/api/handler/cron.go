package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/log"
)

const CronJobTypeSessionPurge = "session-purge"

// SessionPurger é o agendador de limpeza visto pelo handler
type SessionPurger interface {
	RunNow(ctx context.Context) (int64, bool)
	GetStatus() map[string]any
}

type CronJobServices struct {
	SessionPurgeService SessionPurger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeSessionPurge:
			if services.SessionPurgeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servizio di pulizia sessioni non disponibile.", nil)
				return
			}

			removed, ran := services.SessionPurgeService.RunNow(r.Context())
			log.ForContext(r.Context()).WithFields(log.Fields{
				"type":    cronType,
				"removed": removed,
				"ran":     ran,
			}).Info("Cron job executada manualmente")

			writeJSON(w, r, http.StatusOK, map[string]any{
				"type":    cronType,
				"ran":     ran,
				"removed": removed,
			})

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo di job non valido. Valori accettati: session-purge.", nil)
		}
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SessionPurgeService != nil {
			status[CronJobTypeSessionPurge] = services.SessionPurgeService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
