package types

type CreateReviewRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Rate      uint8  `json:"rate" binding:"min=0,max=5"`
	Image     string `json:"image"`
	CountryID uint64 `json:"country_id" binding:"required"`
}

type UpdateReviewRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Rate  *uint8 `json:"rate"`
	Image string `json:"image"`
}
