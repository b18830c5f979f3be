package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vacation-desk/internal/domain/employee"
	"vacation-desk/internal/handler/api"
	"vacation-desk/internal/handler/middleware"
	"vacation-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Vacation *api.VacationHandler
	Approval *api.ApprovalHandler
	Auth     *middleware.AuthMiddleware
	Logger   *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		vacations := apiGroup.Group("/vacations")
		addRoutes(vacations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Vacation.Submit},
			{Method: http.MethodGet, Path: "", Handler: h.Vacation.ListMine},
			{Method: http.MethodGet, Path: "/balance", Handler: h.Vacation.Balance},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Vacation.Get},
		})

		approverOnly := []gin.HandlerFunc{h.Auth.RequireRole(employee.RoleApprover)}
		approvals := apiGroup.Group("/approvals")
		addRoutes(approvals, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Approval.List, Mw: approverOnly},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Approval.Approve, Mw: approverOnly},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Approval.Reject, Mw: approverOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
