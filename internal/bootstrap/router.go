package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/geekpro798/rivetly-backend/internal/api/http"
	apimw "github.com/geekpro798/rivetly-backend/internal/api/http/middleware"
	authmw "github.com/geekpro798/rivetly-backend/internal/auth/middleware"
	"github.com/geekpro798/rivetly-backend/internal/catalog"
	"github.com/geekpro798/rivetly-backend/internal/rules/export"
	ruleshttp "github.com/geekpro798/rivetly-backend/internal/rules/http"
	"github.com/geekpro798/rivetly-backend/internal/rules/renderer"
	"github.com/geekpro798/rivetly-backend/internal/session"
	"github.com/geekpro798/rivetly-backend/internal/storage/postgres"
	synchttp "github.com/geekpro798/rivetly-backend/internal/syncgw/http"
	syncsvc "github.com/geekpro798/rivetly-backend/internal/syncgw/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	AuthClient  *fbauth.Client
	Objects     syncsvc.ObjectStore
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(apimw.RequestIDMiddleware())

	cat := catalog.Builtin()
	sessions := session.NewRepo(dep.Redis)
	exportSvc := export.NewService(renderer.New(cat), sessions)

	rulesGroup := api.Group("/rules")
	rulesGroup.Use(authmw.OptionalFirebaseAuth(dep.AuthClient))
	ruleshttp.Register(rulesGroup, ruleshttp.NewHandler(cat, exportSvc))

	contexts := postgres.NewContextStore(dep.DB)
	gateway := syncsvc.NewGateway(dep.Objects, contexts, sessions)

	syncGroup := api.Group("/sync")
	if dep.AuthClient != nil {
		syncGroup.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))
	}
	syncGroup.Use(apimw.RateLimitMiddleware(rate.Limit(2), 5))
	synchttp.Register(syncGroup, synchttp.NewHandler(gateway, sessions))

	return r
}
