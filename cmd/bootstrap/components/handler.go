package components

import (
	"vacation-desk/internal/handler"
	"vacation-desk/internal/handler/api"
	reqdto "vacation-desk/internal/handler/dto/request"
	"vacation-desk/internal/handler/middleware"
	"vacation-desk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVacationHandler,
		api.NewApprovalHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(RegisterRoutes),
)

func RegisterRoutes(
	engine *gin.Engine,
	cfg config.Config,
	vacationHandler *api.VacationHandler,
	approvalHandler *api.ApprovalHandler,
	auth *middleware.AuthMiddleware,
	logger *middleware.Logger,
) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	handler.NewRouter(engine, cfg, handler.Handlers{
		Vacation: vacationHandler,
		Approval: approvalHandler,
		Auth:     auth,
		Logger:   logger,
	})
	return nil
}
