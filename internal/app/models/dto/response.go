package dto

// ListResponse is the envelope for unpaginated list endpoints.
type ListResponse struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

// NewListResponse wraps results in the standard list envelope.
func NewListResponse(count int, results interface{}) ListResponse {
	return ListResponse{Count: count, Results: results}
}

// PageResponse is the envelope for the paginated student list. Next and
// Previous hold absolute page URLs, or null at the edges.
type PageResponse struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// DetailResponse carries a single human-readable message, used for not-found
// and other error responses.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// NewDetailResponse creates a detail message response.
func NewDetailResponse(detail string) DetailResponse {
	return DetailResponse{Detail: detail}
}
