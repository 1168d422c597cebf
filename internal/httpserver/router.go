package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"bahikhata/internal/domain"
	authsvc "bahikhata/internal/service/auth"
	ledgersvc "bahikhata/internal/service/ledger"
)

// AuthService resolves sessions and signs store owners in.
type AuthService interface {
	SignIn(ctx context.Context, in authsvc.SignInInput) (*domain.StoreOwner, string, error)
	Resolve(ctx context.Context, token string) (*domain.StoreOwner, error)
}

// LedgerService exposes the tenant-scoped ledger operations to the handlers.
type LedgerService interface {
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, ownerID, customerID string) (*ledgersvc.CustomerDetail, error)
	RecentTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error)
	Record(ctx context.Context, ownerID string, in ledgersvc.RecordInput) (*domain.Transaction, *domain.Customer, error)
	Dashboard(ctx context.Context, ownerID string) (domain.DashboardStats, []domain.CustomerAccount, error)
}

// Deps carries the services the router needs.
type Deps struct {
	AuthSvc   AuthService
	LedgerSvc LedgerService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.LedgerSvc == nil {
		return nil, errors.New("httpserver: missing service dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/signin", signInHandler(deps.AuthSvc, logger))

	authed := router.Group("/", authMiddleware(deps.AuthSvc, logger))
	authed.GET("/customers", listCustomersHandler(deps.LedgerSvc, logger))
	authed.GET("/customers/:id", getCustomerHandler(deps.LedgerSvc, logger))
	authed.GET("/transactions", listTransactionsHandler(deps.LedgerSvc, logger))
	authed.POST("/transactions", createTransactionHandler(deps.LedgerSvc, logger))
	authed.GET("/dashboard", dashboardHandler(deps.LedgerSvc, logger))

	return router, nil
}
