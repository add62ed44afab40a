package controllers_fx

import (
	"go.uber.org/fx"
	"trotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGuideController),
	fx.Provide(controllers.NewExploreController))
