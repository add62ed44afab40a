package response_models

// GuideResponse mirrors the JSON schema the guide providers are asked to
// produce. List fields come back nil (not empty) when the model had nothing
// to say, so they can be dropped straight into a plan create request.
type GuideResponse struct {
	Description string   `json:"description"`
	Attractions []string `json:"attractions,omitempty"`
	Foods       []string `json:"foods,omitempty"`
	Activities  []string `json:"activities,omitempty"`
	PackingList []string `json:"packing_list,omitempty"`
}
