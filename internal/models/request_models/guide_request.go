package request_models

type GenerateGuideRequest struct {
	City string `json:"city" binding:"required"`
}
