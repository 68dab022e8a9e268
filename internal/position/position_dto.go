package position

type CreatePositionRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
}

type UpdatePositionRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description"`
}

type PositionResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
