package utils

import "context"

// GuideClientInterface abstracts the generative model used for city guides.
// Implementations return raw JSON matching the guide schema; parsing and
// normalization happen in the guide service.
type GuideClientInterface interface {
	GenerateCityGuideJSON(ctx context.Context, city string) (string, error)
}

// GuideSchema is embedded into every provider prompt so both back ends
// return the same shape.
const GuideSchema = `
{
  "description": "string",
  "attractions": ["string"],
  "foods": ["string"],
  "activities": ["string"],
  "packing_list": ["string"]
}`

const guidePromptFormat = `
You are a travel expert writing a short city guide for %s. Return **JSON only**
that exactly matches the schema below.

Schema (example, match keys exactly):
%s

Hard constraints:
- "description": 2-3 sentences about the city.
- 4-6 entries each in "attractions", "foods" and "activities", specific to %s.
- 5-8 practical entries in "packing_list" for the local climate.

Return JSON only. No comments, no markdown.
`
