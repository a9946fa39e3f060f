package importing

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/internal/config"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/internal/usecases/summarizing"
	"github.com/vfg2006/spendy-api/pkg/log"
)

const importedMessage = "Spese importate con successo."

const (
	extCSV  = ".csv"
	extXLSX = ".xlsx"
	extXLS  = ".xls"
)

type Importer interface {
	Import(ctx context.Context, session *domain.Session, file domain.StatementFile) (string, error)
	Preview(ctx context.Context, file domain.StatementFile) (*domain.ImportPreview, error)
}

type Service struct {
	integrator spendy.SpendyIntegrator
	sessions   domain.SessionInvalidator
	classifier *Classifier
	aggregate  []summarizing.Option
	logger     log.Logger
}

func NewService(cfg *config.Config, integrator spendy.SpendyIntegrator, sessions domain.SessionInvalidator) (*Service, error) {
	classifier, err := LoadClassifier(cfg.Import.ClassifierFile)
	if err != nil {
		return nil, err
	}

	return &Service{
		integrator: integrator,
		sessions:   sessions,
		classifier: classifier,
		aggregate:  summarizing.OptionsFromConfig(cfg.Dashboard),
		logger:     log.Component("importing"),
	}, nil
}

// Extension devolve a extensão aceita do arquivo, em minúsculas
func Extension(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	switch ext {
	case extCSV, extXLSX, extXLS:
		return ext, nil
	}
	return "", ErrUnsupportedFile
}

// Import envia o extrato ao backend. Planilhas xlsx seguem convertidas em CSV.
func (s *Service) Import(ctx context.Context, session *domain.Session, file domain.StatementFile) (string, error) {
	upload, err := s.prepareUpload(file)
	if err != nil {
		return "", err
	}

	logger := s.logger.WithContext(ctx).WithFields(log.Fields{
		"file":        file.Name,
		"upload":      upload.Name,
		"bytes":       len(upload.Data),
		log.FieldUser: session.Username,
	})

	message, err := s.integrator.ImportStatement(ctx, session.Token, upload)
	if err != nil {
		logger.WithError(err).Warn("Importação recusada pelo backend")
		return "", domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
	}

	logger.Info("Extrato importado")

	if message == "" {
		message = importedMessage
	}
	return message, nil
}

func (s *Service) prepareUpload(file domain.StatementFile) (domain.StatementFile, error) {
	ext, err := Extension(file.Name)
	if err != nil {
		return domain.StatementFile{}, err
	}

	if len(bytes.TrimSpace(file.Data)) == 0 {
		return domain.StatementFile{}, ErrEmptyFile
	}

	if ext != extXLSX {
		// xls legado vai sem conversão; o backend decide
		return file, nil
	}

	data, err := XLSXToCSV(file.Data)
	if err != nil {
		return domain.StatementFile{}, err
	}

	base := strings.TrimSuffix(filepath.Base(file.Name), filepath.Ext(file.Name))
	return domain.StatementFile{Name: base + extCSV, Data: data}, nil
}

// Preview lê o extrato localmente, sem enviar ao backend
func (s *Service) Preview(ctx context.Context, file domain.StatementFile) (*domain.ImportPreview, error) {
	ext, err := Extension(file.Name)
	if err != nil {
		return nil, err
	}
	if ext == extXLS {
		return nil, ErrUnsupportedPreview
	}

	upload, err := s.prepareUpload(file)
	if err != nil {
		return nil, err
	}

	statement, err := ParseStatement(bytes.NewReader(upload.Data), s.classifier)
	if err != nil {
		return nil, err
	}

	if len(statement.Expenses) == 0 {
		return nil, ErrNoExpenses
	}

	s.logger.WithContext(ctx).WithFields(log.Fields{
		"file":      file.Name,
		"rows":      len(statement.Expenses),
		"separator": string(statement.Separator),
	}).Debug("Prévia de extrato gerada")

	return &domain.ImportPreview{
		FileName:  file.Name,
		Separator: string(statement.Separator),
		Rows:      len(statement.Expenses),
		Expenses:  statement.Expenses,
		Metrics:   summarizing.Aggregate(statement.Expenses, s.aggregate...),
	}, nil
}
