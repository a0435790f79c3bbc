package repo

import (
	"github.com/GlebRadaev/gigpay/internal/pg"
	contractrepo "github.com/GlebRadaev/gigpay/internal/repo/contract-repo"
	jobrepo "github.com/GlebRadaev/gigpay/internal/repo/job-repo"
	ledgerrepo "github.com/GlebRadaev/gigpay/internal/repo/ledger-repo"
	profilerepo "github.com/GlebRadaev/gigpay/internal/repo/profile-repo"
	reportrepo "github.com/GlebRadaev/gigpay/internal/repo/report-repo"
	"github.com/GlebRadaev/gigpay/internal/service/balanceservice"
	"github.com/GlebRadaev/gigpay/internal/service/contractservice"
	"github.com/GlebRadaev/gigpay/internal/service/jobservice"
	"github.com/GlebRadaev/gigpay/internal/service/paymentservice"
	"github.com/GlebRadaev/gigpay/internal/service/profileservice"
	"github.com/GlebRadaev/gigpay/internal/service/reportservice"
)

type ProfileRepo interface {
	paymentservice.ProfileRepo
	balanceservice.ProfileRepo
	profileservice.Repo
}

type JobRepo interface {
	paymentservice.JobRepo
	balanceservice.JobRepo
	jobservice.Repo
}

type LedgerRepo interface {
	paymentservice.LedgerRepo
	balanceservice.LedgerRepo
}

type Repositories struct {
	ProfileRepo  ProfileRepo
	ContractRepo contractservice.Repo
	JobRepo      JobRepo
	LedgerRepo   LedgerRepo
	ReportRepo   reportservice.Repo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ProfileRepo:  profilerepo.New(conn),
		ContractRepo: contractrepo.New(conn),
		JobRepo:      jobrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
		TxManager:    txManager,
	}
}
