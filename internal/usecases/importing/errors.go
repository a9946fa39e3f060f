package importing

import (
	"errors"

	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

var (
	ErrUnsupportedFile    = domain.NewValidationError(apiErrors.ErrUnsupportedFile, "Formato non supportato. Carica un file CSV o Excel.")
	ErrUnsupportedPreview = domain.NewValidationError(apiErrors.ErrUnsupportedFile, "Anteprima non disponibile per i file .xls. Salva il file come .xlsx o CSV.")
	ErrEmptyFile          = domain.NewValidationError(apiErrors.ErrMissingRequiredData, "Il file selezionato è vuoto.")
	ErrMissingHeader      = domain.NewValidationError(apiErrors.ErrInvalidFormat, "Il file non contiene un'intestazione.")
	ErrNoExpenses         = domain.NewValidationError(apiErrors.ErrInvalidFormat, "Nessuna spesa trovata nel file.")

	ErrUnparseableDate       = errors.New("data não reconhecida")
	ErrUnreadableSpreadsheet = domain.NewValidationError(apiErrors.ErrInvalidFormat, "Impossibile leggere il foglio di calcolo.")
)
