package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/dto"
	"github.com/GlebRadaev/gigpay/internal/service/contractservice"
	"github.com/GlebRadaev/gigpay/pkg/auth"
)

var caller = &domain.Profile{ID: 1, Role: domain.RoleClient}

func NewMock(t *testing.T) (*ContractHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(auth.WithProfile(r.Context(), caller), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestGetContractHandler(t *testing.T) {
	contract := &domain.Contract{ID: 1, Terms: "bla bla bla", Status: domain.ContractInProgress, ClientID: 1, ContractorID: 5}

	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Party reads contract",
			id:   "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetContract(gomock.Any(), 1, 1).Return(contract, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "7",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetContract(gomock.Any(), 7, 1).Return(nil, contractservice.ErrContractNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not a party",
			id:   "3",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetContract(gomock.Any(), 3, 1).Return(nil, contractservice.ErrNotContractParty)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Internal error",
			id:   "1",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetContract(gomock.Any(), 1, 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withID(httptest.NewRequest(http.MethodGet, "/contracts/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()
			handler.GetContract(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ContractResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, dto.NewContractResponse(*contract), body)
			}
		})
	}
}

func TestGetContractHandler_Unauthorized(t *testing.T) {
	handler, _ := NewMock(t)
	w := httptest.NewRecorder()
	handler.GetContract(w, httptest.NewRequest(http.MethodGet, "/contracts/1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListContractsHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Contracts listed",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return([]domain.Contract{
					{ID: 1, Status: domain.ContractNew, ClientID: 1, ContractorID: 5},
					{ID: 2, Status: domain.ContractInProgress, ClientID: 1, ContractorID: 6},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No contracts",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return([]domain.Contract{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]\n",
		},
		{
			name: "Internal error",
			prepareMock: func(service *MockService) {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			r = r.WithContext(auth.WithProfile(r.Context(), caller))
			w := httptest.NewRecorder()
			handler.ListContracts(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
