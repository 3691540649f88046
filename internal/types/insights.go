package types

// RequirementMapping pairs one job requirement with the candidate
// evidence that supports it.
type RequirementMapping struct {
	Requirement string `json:"requirement"`
	Evidence    string `json:"evidence"`
}

// JobInsights is the structured output of the extraction pass over a
// job description. Field names follow the JSON shape the model is
// instructed to return.
type JobInsights struct {
	InferredRole    string               `json:"inferredRole"`
	KeyRequirements []string             `json:"keyRequirements"`
	Mapping         []RequirementMapping `json:"mapping"`
}
