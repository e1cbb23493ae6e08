package schema

// GeneratedNote is the fixed advisory attached to every emitted record,
// reminding downstream tooling that stories are its job, not ours.
const GeneratedNote = "Stories need to be populated based on PRD analysis"

// UserStory is one implementation unit in the emitted record. This core never
// populates stories; the type exists so downstream population tools and this
// tool agree on the wire shape.
type UserStory struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptanceCriteria"`
	Priority           int      `json:"priority"`
	Passes             bool     `json:"passes"`
	Notes              string   `json:"notes"`
}

// ComplexityRecord is the wire representation of a ComplexityFactors value.
type ComplexityRecord struct {
	Score               float64      `json:"score"`
	Category            Category     `json:"category"`
	EstimatedStories    string       `json:"estimated_stories"`
	EstimatedIterations string       `json:"estimated_iterations"`
	Factors             FactorCounts `json:"factors"`
}

// GenerationInfo carries record provenance metadata.
type GenerationInfo struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// AnalysisResult is the full sizing record emitted once per invocation.
// UserStories is always present and empty; a downstream planning tool fills
// it in from the sizing guidance here.
type AnalysisResult struct {
	Project     string           `json:"project"`
	BranchName  string           `json:"branchName"`
	Description string           `json:"description"`
	Complexity  ComplexityRecord `json:"complexity"`
	UserStories []UserStory      `json:"userStories"`
	Generated   GenerationInfo   `json:"_generated"`
}
