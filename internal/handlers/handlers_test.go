package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/domain"
	"github.com/GlebRadaev/gigpay/internal/handlers/admin"
	"github.com/GlebRadaev/gigpay/internal/handlers/balance"
	"github.com/GlebRadaev/gigpay/internal/handlers/contracts"
	"github.com/GlebRadaev/gigpay/internal/handlers/jobs"
	"github.com/GlebRadaev/gigpay/internal/service"
	"github.com/GlebRadaev/gigpay/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		ContractService: contracts.NewMockService(ctrl),
		JobService:      jobs.NewMockService(ctrl),
		PaymentService:  jobs.NewMockPaymentService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		ReportService:   admin.NewMockService(ctrl),
		ProfileService:  auth.NewMockProfileResolver(ctrl),
	}

	h := New(services, auth.NewMockTokenValidator(ctrl), true)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticate)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockContractHandler := NewMockContractHandler(ctrl)
	mockJobHandler := NewMockJobHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)
	tokens := auth.NewMockTokenValidator(ctrl)
	resolver := auth.NewMockProfileResolver(ctrl)

	mockContractHandler.EXPECT().GetContract(gomock.Any(), gomock.Any()).AnyTimes()
	mockContractHandler.EXPECT().ListContracts(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().ListUnpaid(gomock.Any(), gomock.Any()).AnyTimes()
	mockJobHandler.EXPECT().Pay(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BestProfession(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().BestClients(gomock.Any(), gomock.Any()).AnyTimes()

	tokens.EXPECT().ValidateToken("valid").Return(&auth.Claims{ProfileID: 1}, nil).AnyTimes()
	tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("invalid token")).AnyTimes()
	resolver.EXPECT().GetProfile(gomock.Any(), 1).Return(&domain.Profile{ID: 1, Role: domain.RoleClient}, nil).AnyTimes()

	h := &Handlers{
		ContractHandler: mockContractHandler,
		JobHandler:      mockJobHandler,
		BalanceHandler:  mockBalanceHandler,
		AdminHandler:    mockAdminHandler,
		Authenticate:    auth.ProfileMiddleware(tokens, resolver),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/admin/best-profession?start=2020-01-01&end=2020-12-31", "", http.StatusOK},
		{"GET", "/admin/best-clients?start=2020-01-01&end=2020-12-31&limit=3", "", http.StatusOK},
		{"GET", "/contracts/1", "", http.StatusUnauthorized},
		{"GET", "/contracts", "", http.StatusUnauthorized},
		{"GET", "/jobs/unpaid", "", http.StatusUnauthorized},
		{"POST", "/jobs/2/pay", "", http.StatusUnauthorized},
		{"POST", "/balances/deposit/1", "", http.StatusUnauthorized},
		{"GET", "/balances/transactions", "", http.StatusUnauthorized},
		{"POST", "/jobs/2/pay", "forged", http.StatusUnauthorized},
		{"GET", "/contracts/1", "valid", http.StatusOK},
		{"GET", "/contracts", "valid", http.StatusOK},
		{"GET", "/jobs/unpaid", "valid", http.StatusOK},
		{"POST", "/jobs/2/pay", "valid", http.StatusOK},
		{"POST", "/balances/deposit/1", "valid", http.StatusOK},
		{"GET", "/balances/transactions", "valid", http.StatusOK},
		{"GET", "/jobs/2/pay", "valid", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
