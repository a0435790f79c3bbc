package service

import (
	"time"

	"github.com/GlebRadaev/gigpay/internal/handlers/admin"
	"github.com/GlebRadaev/gigpay/internal/handlers/balance"
	"github.com/GlebRadaev/gigpay/internal/handlers/contracts"
	"github.com/GlebRadaev/gigpay/internal/handlers/jobs"
	"github.com/GlebRadaev/gigpay/internal/repo"
	"github.com/GlebRadaev/gigpay/internal/service/balanceservice"
	"github.com/GlebRadaev/gigpay/internal/service/contractservice"
	"github.com/GlebRadaev/gigpay/internal/service/jobservice"
	"github.com/GlebRadaev/gigpay/internal/service/paymentservice"
	"github.com/GlebRadaev/gigpay/internal/service/profileservice"
	"github.com/GlebRadaev/gigpay/internal/service/reportservice"
	"github.com/GlebRadaev/gigpay/pkg/auth"
	"github.com/GlebRadaev/gigpay/pkg/cache"
)

type Services struct {
	ContractService contracts.Service
	JobService      jobs.Service
	PaymentService  jobs.PaymentService
	BalanceService  balance.Service
	ReportService   admin.Service
	ProfileService  auth.ProfileResolver
}

// New wires the services. reportCache may be nil.
func New(repos *repo.Repositories, reportCache cache.Cache, txTimeout time.Duration) *Services {
	return &Services{
		ContractService: contractservice.New(repos.ContractRepo),
		JobService:      jobservice.New(repos.JobRepo),
		PaymentService:  paymentservice.New(repos.TxManager, repos.JobRepo, repos.ProfileRepo, repos.LedgerRepo, txTimeout),
		BalanceService:  balanceservice.New(repos.TxManager, repos.ProfileRepo, repos.JobRepo, repos.LedgerRepo, txTimeout),
		ReportService:   reportservice.New(repos.ReportRepo, reportCache),
		ProfileService:  profileservice.New(repos.ProfileRepo),
	}
}
