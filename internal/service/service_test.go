package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigpay/internal/pg"
	"github.com/GlebRadaev/gigpay/internal/repo"
	"github.com/GlebRadaev/gigpay/internal/service/balanceservice"
	"github.com/GlebRadaev/gigpay/internal/service/paymentservice"
	"github.com/GlebRadaev/gigpay/internal/service/reportservice"
	"github.com/GlebRadaev/gigpay/pkg/cache"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))

	services := New(repos, nil, time.Second)

	assert.NotNil(t, services.ContractService)
	assert.NotNil(t, services.JobService)
	assert.NotNil(t, services.ProfileService)
	assert.IsType(t, &paymentservice.Service{}, services.PaymentService)
	assert.IsType(t, &balanceservice.Service{}, services.BalanceService)
	assert.IsType(t, &reportservice.Service{}, services.ReportService)
}

func TestNew_WithReportCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := &repo.Repositories{TxManager: pg.NewMockTXManager(ctrl)}

	services := New(repos, cache.NewMockCache(ctrl), time.Second)

	assert.NotNil(t, services.ReportService)
}
