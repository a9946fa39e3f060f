package housing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/spendy-api/infrastructure/integrator/spendy"
	"github.com/vfg2006/spendy-api/internal/domain"
	"github.com/vfg2006/spendy-api/pkg/apiErrors"
)

var (
	ErrInvalidHouseCode = domain.NewValidationError(apiErrors.ErrMissingRequiredData, "Inserisci un codice casa valido.")
	ErrMissingHouseID   = domain.NewValidationError(apiErrors.ErrMissingRequiredData, "Inserisci l'identificativo della casa.")
	ErrNoRoommates      = domain.NewValidationError(apiErrors.ErrInvalidRequest, "Nessun coinquilino trovato per questa casa.")
)

const linkedMessage = "Casa collegata con successo."

type HouseManager interface {
	LinkHouse(ctx context.Context, session *domain.Session, houseCode string) (string, error)
	Roommates(ctx context.Context, session *domain.Session, houseID string) ([]domain.Roommate, error)
}

type Service struct {
	integrator spendy.SpendyIntegrator
	sessions   domain.SessionInvalidator
}

func NewService(integrator spendy.SpendyIntegrator, sessions domain.SessionInvalidator) HouseManager {
	return &Service{
		integrator: integrator,
		sessions:   sessions,
	}
}

// LinkHouse associa o usuário à casa identificada pelo código
func (s *Service) LinkHouse(ctx context.Context, session *domain.Session, houseCode string) (string, error) {
	houseCode = strings.TrimSpace(houseCode)
	if houseCode == "" {
		return "", ErrInvalidHouseCode
	}

	message, err := s.integrator.LinkHouse(ctx, session.Token, houseCode)
	if err != nil {
		return "", domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
	}

	logrus.WithField("user_name", session.Username).Info("Casa vinculada")

	if message == "" {
		message = linkedMessage
	}
	return message, nil
}

func (s *Service) Roommates(ctx context.Context, session *domain.Session, houseID string) ([]domain.Roommate, error) {
	houseID = strings.TrimSpace(houseID)
	if houseID == "" {
		return nil, ErrMissingHouseID
	}

	roommates, err := s.integrator.GetRoommates(ctx, session.Token, houseID)
	if err != nil {
		return nil, domain.ExpireOnUnauthorized(ctx, s.sessions, session, err)
	}

	if len(roommates) == 0 {
		return nil, ErrNoRoommates
	}

	return roommates, nil
}
