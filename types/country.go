package types

type CreateCountryRequest struct {
	Name    string   `json:"name" binding:"required"`
	Capital string   `json:"capital"`
	Region  string   `json:"region"`
	Images  []string `json:"images"`
}

type UpdateCountryRequest struct {
	Name    string   `json:"name"`
	Capital string   `json:"capital"`
	Region  string   `json:"region"`
	Images  []string `json:"images"`
}
