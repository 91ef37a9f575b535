package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-vps/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
	// ProvisionTimeout таймаут заказа сервера вместе с вызовом провайдера.
	ProvisionTimeout = 3 * time.Minute

	DefaultProvisionPerMinute = 5
)

const (
	RouteGroup   = "/api"
	MetricsRoute = "/metrics"

	ServersRoute         = "/servers"
	ServerRoute          = "/servers/:id"
	ServerPowerRoute     = "/servers/:id/power"
	ServerRebuildRoute   = "/servers/:id/rebuild"
	ServerReconcileRoute = "/servers/:id/reconcile"

	BalanceRoute             = "/balance"
	BalanceTransactionsRoute = "/balance/transactions"

	PlansRoute   = "/plans"
	PricingRoute = "/pricing/:plan"

	AdminPricingRoute      = "/admin/pricing/:plan"
	AdminWalletCreditRoute = "/admin/wallets/:owner/credit"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	Provisioner     ProvisioningServicer
	Lifecycle       LifecycleServicer
	Ledger          LedgerServicer
	Pricing         PricingServicer
	JWTSecretKey    []byte
	MetricsGatherer prometheus.Gatherer
	CORSOrigins     []string
	// ProvisionPerMinute лимит заказов серверов одного владельца в минуту. 0 - значение по умолчанию.
	ProvisionPerMinute int
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if len(args.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  args.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}
	r.Use(middlewares.Errors())

	if args.MetricsGatherer != nil {
		r.GET(MetricsRoute, gin.WrapH(promhttp.HandlerFor(args.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	perMinute := args.ProvisionPerMinute
	if perMinute <= 0 {
		perMinute = DefaultProvisionPerMinute
	}
	provisionLimiter := middlewares.NewOwnerRateLimiter(perMinute, time.Minute)

	serversHandler := NewServersHandler(args.Provisioner, args.Lifecycle)
	balanceHandler := NewBalanceHandler(args.Ledger)
	pricingHandler := NewPricingHandler(args.Pricing)
	adminHandler := NewAdminHandler(args.Pricing, args.Ledger)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного владельца.
	api.POST(ServersRoute, provisionLimiter.Middleware(), serversHandler.Create)
	api.GET(ServersRoute, serversHandler.Index)
	api.GET(ServerRoute, serversHandler.Show)
	api.DELETE(ServerRoute, serversHandler.Delete)
	api.POST(ServerPowerRoute, serversHandler.Power)
	api.POST(ServerRebuildRoute, serversHandler.Rebuild)
	api.POST(ServerReconcileRoute, serversHandler.Reconcile)

	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(BalanceTransactionsRoute, balanceHandler.Transactions)

	api.GET(PlansRoute, pricingHandler.Index)
	api.GET(PricingRoute, pricingHandler.Show)

	admin := api.Group("", middlewares.AdminRequired())
	admin.PUT(AdminPricingRoute, adminHandler.SetPrice)
	admin.DELETE(AdminPricingRoute, adminHandler.ResetPrice)
	admin.POST(AdminWalletCreditRoute, adminHandler.Credit)
	return r, nil
}
