package request_models

// CreatePlanRequest carries everything the client assembled for a new plan.
// Required-field checks live in the service, not in binding tags, so that a
// missing field produces the contract's 400 instead of gin's bind error.
type CreatePlanRequest struct {
	UserID      string   `json:"userId"`
	Place       string   `json:"place"`
	Duration    int      `json:"duration"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Attractions []string `json:"attractions"`
	Foods       []string `json:"foods"`
	PackingList []string `json:"packing_list"`
}
