package handler

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here so swagger annotations can reference it.
type errorResponse struct {
	Error string `json:"error"`
}

// productRequest carries the writable fields of a product. The same body is
// used for create and full update.
type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required"`
	Category    string  `json:"category"    validate:"required"`
}
