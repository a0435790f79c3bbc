package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gigpay/docs"
	adminhandlers "github.com/GlebRadaev/gigpay/internal/handlers/admin"
	balancehandlers "github.com/GlebRadaev/gigpay/internal/handlers/balance"
	contracthandlers "github.com/GlebRadaev/gigpay/internal/handlers/contracts"
	jobhandlers "github.com/GlebRadaev/gigpay/internal/handlers/jobs"
	"github.com/GlebRadaev/gigpay/internal/service"
	"github.com/GlebRadaev/gigpay/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ContractHandler interface {
	GetContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BestProfession(w http.ResponseWriter, r *http.Request)
	BestClients(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ContractHandler ContractHandler
	JobHandler      JobHandler
	BalanceHandler  BalanceHandler
	AdminHandler    AdminHandler
	Authenticate    func(http.Handler) http.Handler
}

func New(s *service.Services, tokens auth.TokenValidator, depositOwnerOnly bool) *Handlers {
	return &Handlers{
		ContractHandler: contracthandlers.New(s.ContractService),
		JobHandler:      jobhandlers.New(s.JobService, s.PaymentService),
		BalanceHandler:  balancehandlers.New(s.BalanceService, depositOwnerOnly),
		AdminHandler:    adminhandlers.New(s.ReportService),
		Authenticate:    auth.ProfileMiddleware(tokens, s.ProfileService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/admin", func(r chi.Router) {
		r.Get("/best-profession", h.AdminHandler.BestProfession)
		r.Get("/best-clients", h.AdminHandler.BestClients)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ContractHandler.ListContracts)
			r.Get("/{id}", h.ContractHandler.GetContract)
		})
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/unpaid", h.JobHandler.ListUnpaid)
			r.Post("/{id}/pay", h.JobHandler.Pay)
		})
		r.Route("/balances", func(r chi.Router) {
			r.Post("/deposit/{userId}", h.BalanceHandler.Deposit)
			r.Get("/transactions", h.BalanceHandler.GetTransactions)
		})
	})

	return r
}
