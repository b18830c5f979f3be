package components

import (
	"vacation-desk/internal/domain/vacation"
	"vacation-desk/internal/pkg/clock"
	"vacation-desk/internal/pkg/config"
	"vacation-desk/internal/usecase"
	"vacation-desk/internal/usecase/commands"
	"vacation-desk/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewPolicy,
	vacation.NewValidator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVacationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVacationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClock decides which calendar day "today" is for the start-date check.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Server.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

func NewPolicy(cfg config.Config) (vacation.Policy, error) {
	return vacation.NewPolicy(cfg.Vacation.MinDays, cfg.Vacation.MaxDays, cfg.Vacation.AnnualAllotment)
}
