package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trotter/internal/api/controllers"
	"trotter/internal/models/db_models"
	"trotter/internal/models/request_models"
	"trotter/internal/services"
	"trotter/pkg/middleware"
	"trotter/pkg/utils"
)

type mockPlanService struct {
	createPlan  func(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.Plan, error)
	getPlans    func(ctx context.Context, userId string) ([]db_models.Plan, error)
	getPlanById func(ctx context.Context, planId string) (*db_models.Plan, error)
}

func (m *mockPlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*db_models.Plan, error) {
	return m.createPlan(ctx, req)
}
func (m *mockPlanService) GetPlans(ctx context.Context, userId string) ([]db_models.Plan, error) {
	return m.getPlans(ctx, userId)
}
func (m *mockPlanService) GetPlanById(ctx context.Context, planId string) (*db_models.Plan, error) {
	return m.getPlanById(ctx, planId)
}

var _ services.PlanServiceInterface = (*mockPlanService)(nil)

// newPlansRouter mirrors the wiring in cmd/app: same middleware, same group.
func newPlansRouter(svc services.PlanServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	pc := controllers.NewPlansController(svc)
	group := r.Group("/plans")
	group.POST("", pc.CreatePlan)
	group.GET("", pc.GetPlans)
	group.GET("/:id", pc.GetPlanById)
	return r
}

func storedPlan() *db_models.Plan {
	plan := &db_models.Plan{
		UserID:   uuid.New(),
		Place:    "Paris",
		Duration: 5,
		Name:     "My Paris Plan",
		Image:    "https://images.example.com/paris.jpg",
	}
	plan.ID = uuid.New()
	plan.CreatedAt = time.Now().Unix()
	plan.UpdatedAt = plan.CreatedAt
	return plan
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlansController_CreatePlan_Returns201(t *testing.T) {
	r := newPlansRouter(&mockPlanService{
		createPlan: func(_ context.Context, req request_models.CreatePlanRequest) (*db_models.Plan, error) {
			assert.Equal(t, "Paris", req.Place)
			return storedPlan(), nil
		},
	})

	w := doJSON(t, r, http.MethodPost, "/plans",
		`{"userId":"`+uuid.NewString()+`","place":"Paris","duration":5}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "My Paris Plan", data["name"])
	// Empty optional lists must be missing keys, not empty arrays.
	_, hasActivities := data["activities"]
	assert.False(t, hasActivities)
}

func TestPlansController_CreatePlan_MissingField(t *testing.T) {
	r := newPlansRouter(&mockPlanService{
		createPlan: func(context.Context, request_models.CreatePlanRequest) (*db_models.Plan, error) {
			return nil, utils.ErrMissingRequiredField
		},
	})

	w := doJSON(t, r, http.MethodPost, "/plans", `{"place":"Paris"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlansController_CreatePlan_MalformedBody(t *testing.T) {
	r := newPlansRouter(&mockPlanService{})

	w := doJSON(t, r, http.MethodPost, "/plans", `{"place":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlansController_GetPlans_PassesUserFilter(t *testing.T) {
	userId := uuid.NewString()
	r := newPlansRouter(&mockPlanService{
		getPlans: func(_ context.Context, got string) ([]db_models.Plan, error) {
			assert.Equal(t, userId, got)
			return []db_models.Plan{*storedPlan()}, nil
		},
	})

	w := doJSON(t, r, http.MethodGet, "/plans?userId="+userId, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlansController_GetPlans_EmptyIs404(t *testing.T) {
	r := newPlansRouter(&mockPlanService{
		getPlans: func(context.Context, string) ([]db_models.Plan, error) {
			return nil, utils.ErrNoPlansFound
		},
	})

	w := doJSON(t, r, http.MethodGet, "/plans", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlansController_GetPlans_StoreFailureIs500(t *testing.T) {
	r := newPlansRouter(&mockPlanService{
		getPlans: func(context.Context, string) ([]db_models.Plan, error) {
			return nil, utils.ErrDatabaseError
		},
	})

	w := doJSON(t, r, http.MethodGet, "/plans", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPlansController_GetPlanById_NotFound(t *testing.T) {
	r := newPlansRouter(&mockPlanService{
		getPlanById: func(context.Context, string) (*db_models.Plan, error) {
			return nil, utils.ErrPlanNotFound
		},
	})

	w := doJSON(t, r, http.MethodGet, "/plans/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlansController_GetPlanById_ReturnsStoredFields(t *testing.T) {
	plan := storedPlan()
	plan.Attractions = []string{"Louvre"}
	r := newPlansRouter(&mockPlanService{
		getPlanById: func(_ context.Context, id string) (*db_models.Plan, error) {
			assert.Equal(t, plan.ID.String(), id)
			return plan, nil
		},
	})

	w := doJSON(t, r, http.MethodGet, "/plans/"+plan.ID.String(), "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, plan.Place, data["place"])
	assert.Equal(t, float64(plan.Duration), data["duration"])
	assert.Equal(t, []interface{}{"Louvre"}, data["attractions"])
	_, hasFoods := data["foods"]
	assert.False(t, hasFoods)
}
