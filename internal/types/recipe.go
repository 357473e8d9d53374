package types

// Recipe is the JSON shape returned by GET /api/recipes/{mood}
type Recipe struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Mood         string `json:"mood"`
	PrepTime     int    `json:"prep_time"`
	Difficulty   string `json:"difficulty"`
	Dietary      string `json:"dietary"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
