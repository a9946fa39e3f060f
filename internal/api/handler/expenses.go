package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/dashboarding"
	"github.com/vfg2006/spendy-api/internal/usecases/importing"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
	"github.com/vfg2006/spendy-api/pkg/log"
)

// limite do corpo multipart de importação
const maxUploadSize = 10 << 20

// filterFromQuery lê mode, month, year, startedDate e completedDate da query string
func filterFromQuery(r *http.Request) domain.ExpenseFilter {
	query := r.URL.Query()
	return domain.ExpenseFilter{
		Mode:          domain.FilterMode(query.Get("mode")),
		Month:         query.Get("month"),
		Year:          query.Get("year"),
		StartedDate:   query.Get("startedDate"),
		CompletedDate: query.Get("completedDate"),
	}
}

// readUpload lê o campo multipart "file" inteiro para a memória
func readUpload(w http.ResponseWriter, r *http.Request) (domain.StatementFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao ler formulário multipart")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Caricamento non valido. Invia il file nel campo \"file\".", nil)
		return domain.StatementFile{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Seleziona un file da importare.", nil)
		return domain.StatementFile{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Impossibile leggere il file caricato.", nil)
		return domain.StatementFile{}, false
	}

	return domain.StatementFile{Name: header.Filename, Data: data}, true
}

func ImportExpenses(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		file, ok := readUpload(w, r)
		if !ok {
			return
		}

		message, err := service.Import(r.Context(), session, file)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: message})
	}
}

func PreviewExpenses(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, ok := readUpload(w, r)
		if !ok {
			return
		}

		preview, err := service.Preview(r.Context(), file)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, preview)
	}
}

func GetExpenses(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		expenses, err := service.Expenses(r.Context(), session, filterFromQuery(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, expenses)
	}
}

func GetSummary(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		metrics, err := service.Summary(r.Context(), session, filterFromQuery(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

func GetMonthly(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		series, err := service.Monthly(r.Context(), session, r.URL.Query().Get("year"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	}
}

func GetDashboard(service dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFrom(w, r)
		if !ok {
			return
		}

		view, err := service.Load(r.Context(), session, filterFromQuery(r), r.URL.Query().Get("chartYear"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}
