package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/dto"
	"github.com/GlebRadaev/gigpay/internal/service/balanceservice"
	"github.com/GlebRadaev/gigpay/pkg/auth"
)

var caller = &domain.Profile{ID: 2, Role: domain.RoleClient}

func NewMock(t *testing.T, ownerOnly bool) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, ownerOnly), service
}

func depositRequest(userID, body string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	r := httptest.NewRequest(http.MethodPost, "/balances/deposit/"+userID, bytes.NewBufferString(body))
	return r.WithContext(context.WithValue(auth.WithProfile(r.Context(), caller), chi.RouteCtxKey, rctx))
}

func TestDepositHandler(t *testing.T) {
	tests := []struct {
		name         string
		ownerOnly    bool
		userID       string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:      "Deposit accepted",
			ownerOnly: true,
			userID:    "2",
			body:      `{"amount": 100}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), 2, 100.0).Return(&domain.Profile{ID: 2, Balance: 331.11, Role: domain.RoleClient}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Deposit to another profile when allowed",
			ownerOnly: false,
			userID:    "3",
			body:      `{"amount": 10.5}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), 3, 10.5).Return(&domain.Profile{ID: 3, Balance: 20}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Deposit to another profile when forbidden",
			ownerOnly:    true,
			userID:       "3",
			body:         `{"amount": 10}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Invalid profile id",
			userID:       "abc",
			body:         `{"amount": 10}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non-numeric amount",
			ownerOnly:    true,
			userID:       "2",
			body:         `{"amount": "lots"}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing amount",
			ownerOnly:    true,
			userID:       "2",
			body:         `{}`,
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Negative amount",
			ownerOnly: true,
			userID:    "2",
			body:      `{"amount": -1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), 2, -1.0).Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Cap exceeded",
			ownerOnly: true,
			userID:    "2",
			body:      `{"amount": 101}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), 2, 101.0).Return(nil, balanceservice.ErrDepositCapExceeded)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Profile not found",
			ownerOnly: false,
			userID:    "99",
			body:      `{"amount": 1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), 99, 1.0).Return(nil, balanceservice.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t, tt.ownerOnly)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Deposit(w, depositRequest(tt.userID, tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t, true)
	id := uuid.New()
	jobID, from := 2, 1
	createdAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)
	service.EXPECT().GetTransactions(gomock.Any(), 2).Return([]domain.LedgerEntry{
		{ID: id, Kind: domain.LedgerSettlement, JobID: &jobID, FromProfileID: &from, ToProfileID: 2, Amount: 201, CreatedAt: createdAt},
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/balances/transactions", nil)
	r = r.WithContext(auth.WithProfile(r.Context(), caller))
	w := httptest.NewRecorder()
	handler.GetTransactions(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.LedgerEntryResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []dto.LedgerEntryResponseDTO{{
		ID: id.String(), Kind: "settlement", JobID: &jobID, FromProfileID: &from, ToProfileID: 2, Amount: 201, CreatedAt: createdAt,
	}}, body)
}

func TestGetTransactionsHandler_Error(t *testing.T) {
	handler, service := NewMock(t, true)
	service.EXPECT().GetTransactions(gomock.Any(), 2).Return(nil, errors.New("db error"))

	r := httptest.NewRequest(http.MethodGet, "/balances/transactions", nil)
	r = r.WithContext(auth.WithProfile(r.Context(), caller))
	w := httptest.NewRecorder()
	handler.GetTransactions(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
