package services

import (
	"context"
	"encoding/json"
	"strings"

	"trotter/internal/models/response_models"
	"trotter/pkg/utils"
)

type GuideServiceInterface interface {
	GenerateGuide(ctx context.Context, city string) (*response_models.GuideResponse, error)
}

type GuideService struct {
	guideClient utils.GuideClientInterface
}

func NewGuideService(guideClient utils.GuideClientInterface) GuideServiceInterface {
	return &GuideService{
		guideClient: guideClient,
	}
}

func (g *GuideService) GenerateGuide(ctx context.Context, city string) (*response_models.GuideResponse, error) {

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrMissingRequiredField
	}

	raw, err := g.guideClient.GenerateCityGuideJSON(ctx, city)
	if err != nil {
		return nil, utils.ErrGuideUnavailable
	}

	var guide response_models.GuideResponse
	if err := json.Unmarshal([]byte(raw), &guide); err != nil {
		return nil, utils.ErrGuideUnavailable
	}

	if guide.Description == "" {
		guide.Description = "A wonderful trip to " + city
	}

	// Empty lists come back nil so they can flow straight into a plan
	// create request without resurrecting as empty arrays.
	guide.Attractions = dropEmpty(guide.Attractions)
	guide.Foods = dropEmpty(guide.Foods)
	guide.Activities = dropEmpty(guide.Activities)
	guide.PackingList = dropEmpty(guide.PackingList)

	return &guide, nil
}

func dropEmpty(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
