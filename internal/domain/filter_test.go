package domain

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  ExpenseFilter
		wantErr error
	}{
		{name: "Todas as despesas", filter: ExpenseFilter{Mode: FilterAll}},
		{name: "Mês válido", filter: ExpenseFilter{Mode: FilterMonth, Month: "03", Year: "2024"}},
		{name: "Mês fora do intervalo", filter: ExpenseFilter{Mode: FilterMonth, Month: "13", Year: "2024"}, wantErr: ErrInvalidMonth},
		{name: "Ano com dois dígitos", filter: ExpenseFilter{Mode: FilterMonth, Month: "1", Year: "24"}, wantErr: ErrInvalidYear},
		{name: "Intervalo válido", filter: ExpenseFilter{Mode: FilterRange, StartedDate: "2024-01-01", CompletedDate: "2024-01-31"}},
		{name: "Intervalo de um único dia", filter: ExpenseFilter{Mode: FilterRange, StartedDate: "2024-01-01", CompletedDate: "2024-01-01"}},
		{name: "Intervalo sem data final", filter: ExpenseFilter{Mode: FilterRange, StartedDate: "2024-01-01"}, wantErr: ErrMissingRange},
		{name: "Início depois do fim", filter: ExpenseFilter{Mode: FilterRange, StartedDate: "2024-02-01", CompletedDate: "2024-01-01"}, wantErr: ErrInvalidRange},
		{name: "Data malformada", filter: ExpenseFilter{Mode: FilterRange, StartedDate: "01/02/2024", CompletedDate: "2024-03-01"}, wantErr: ErrInvalidDate},
		{name: "Modo desconhecido", filter: ExpenseFilter{Mode: "week"}, wantErr: ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpenseFilter_NormalizeERangeBounds(t *testing.T) {
	f := ExpenseFilter{Mode: " RANGE ", StartedDate: " 2024-01-05", CompletedDate: "2024-01-10 "}.Normalize()

	assert.Equal(t, FilterRange, f.Mode)

	start, end, err := f.RangeBounds()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05 00:00:00", start)
	assert.Equal(t, "2024-01-10 23:59:59", end)
	assert.Equal(t, "range:2024-01-05..2024-01-10", f.Key())

	assert.Equal(t, FilterAll, ExpenseFilter{}.Normalize().Mode)
}

func TestExpenseFilter_NormalizeMes(t *testing.T) {
	tests := []struct {
		name  string
		month string
		want  string
	}{
		{name: "Mês sem zero à esquerda", month: "3", want: "03"},
		{name: "Mês com espaços", month: " 7 ", want: "07"},
		{name: "Mês já com dois dígitos", month: "11", want: "11"},
		{name: "Mês com zero à esquerda", month: "03", want: "03"},
		{name: "Mês inválido fica para a validação", month: "13", want: "13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExpenseFilter{Mode: FilterMonth, Month: tt.month, Year: "2024"}.Normalize()
			assert.Equal(t, tt.want, f.Month)
		})
	}
}

func TestBackendError_Is(t *testing.T) {
	assert.ErrorIs(t, &BackendError{Status: http.StatusUnauthorized}, ErrUnauthorized)
	assert.ErrorIs(t, &BackendError{Status: http.StatusForbidden}, ErrUnauthorized)
	assert.NotErrorIs(t, &BackendError{Status: http.StatusBadGateway}, ErrUnauthorized)
	assert.Equal(t, "backend respondeu 400: bad", (&BackendError{Status: 400, Message: "bad"}).Error())
}

type invalidatorStub struct {
	ids []string
}

func (s *invalidatorStub) Invalidate(_ context.Context, id string) error {
	s.ids = append(s.ids, id)
	return nil
}

func TestExpireOnUnauthorized(t *testing.T) {
	stub := &invalidatorStub{}
	session := &Session{ID: "abc"}

	err := ExpireOnUnauthorized(context.Background(), stub, session, &BackendError{Status: 401, Message: "jwt expired"})
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, []string{"abc"}, stub.ids)

	other := errors.New("timeout")
	assert.Equal(t, other, ExpireOnUnauthorized(context.Background(), stub, session, other))
	assert.NoError(t, ExpireOnUnauthorized(context.Background(), stub, session, nil))
	assert.Len(t, stub.ids, 1)
}

func TestSession(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&Session{}).Expired(now))
	assert.True(t, (&Session{ExpiresAt: now}).Expired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Second)}).Expired(now))

	ctx := WithSession(context.Background(), &Session{ID: "s1"})
	got, ok := SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "s1", got.ID)

	_, ok = SessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestRoommate_DisplayName(t *testing.T) {
	assert.Equal(t, "Mario Rossi", Roommate{Name: "Mario", Surname: "Rossi", Username: "mr"}.DisplayName())
	assert.Equal(t, "Mario", Roommate{Name: "Mario"}.DisplayName())
	assert.Equal(t, "mr", Roommate{Username: "mr"}.DisplayName())
}
