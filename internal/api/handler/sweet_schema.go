package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createSweetRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
}

// restockRequest deliberately has no "required" tag on Quantity: a missing
// field decodes to 0 and fails the positivity check downstream, matching the
// documented surface behavior.
type restockRequest struct {
	Quantity int64 `json:"quantity"`
}

// updateSweetRequest carries a partial update; absent fields stay unchanged.
type updateSweetRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int64   `json:"quantity,omitempty"`
}

type sweetResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

type messageResponse struct {
	Message string `json:"message"`
}
