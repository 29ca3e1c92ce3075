package controllers_fx

import (
	"go.uber.org/fx"
	"wanderwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewStopController),
	fx.Provide(controllers.NewBudgetController))
