package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"trotter/cmd/fx/account_fx"
	"trotter/cmd/fx/controllers_fx"
	"trotter/cmd/fx/db_fx"
	"trotter/cmd/fx/explore_fx"
	"trotter/cmd/fx/guide_fx"
	"trotter/cmd/fx/mail_fx"
	"trotter/cmd/fx/memcache_fx"
	"trotter/cmd/fx/plan_fx"
	"trotter/internal/api/controllers"
	"trotter/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		plan_fx.Module,
		account_fx.Module,
		guide_fx.Module,
		explore_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "5000"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plansController *controllers.PlansController,
	accountController *controllers.AccountController,
	guideController *controllers.GuideController,
	exploreController *controllers.ExploreController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plansController, accountController, guideController, exploreController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plansController *controllers.PlansController,
	accountController *controllers.AccountController,
	guideController *controllers.GuideController,
	exploreController *controllers.ExploreController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("", plansController.CreatePlan)
	plansGroup.GET("", plansController.GetPlans)
	plansGroup.GET("/:id", plansController.GetPlanById)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/forgot-password", accountController.ForgotPassword)
	accountsGroup.POST("/reset-password", accountController.ResetPassword)

	// Proxy routes spend third-party quota, so they sit behind auth.
	guideGroup := r.Group("/guide", middleware.JWTAuthMiddleware())
	guideGroup.POST("/generate-guide", guideController.GenerateGuide)

	exploreGroup := r.Group("/explore", middleware.JWTAuthMiddleware())
	exploreGroup.GET("/search-cities", exploreController.SearchCities)
	exploreGroup.GET("/current-weather", exploreController.CurrentWeather)
	exploreGroup.GET("/search-images", exploreController.SearchImages)
}
