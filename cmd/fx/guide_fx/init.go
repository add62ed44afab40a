package guide_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"trotter/internal/services"
	"trotter/pkg/utils"
)

var Module = fx.Provide(provideGuideClient, provideGuideService)

func provideGuideClient() utils.GuideClientInterface {

	if os.Getenv("GUIDE_PROVIDER") == "openai" {
		return utils.NewOpenAIGuideClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	}

	client, err := utils.NewGeminiGuideClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create guide client: %v", err)
	}
	return client
}

func provideGuideService(guideClient utils.GuideClientInterface) services.GuideServiceInterface {
	return services.NewGuideService(guideClient)
}
