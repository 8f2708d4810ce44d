package api

// RewriteRequest тело POST /humanize. Указатель отличает отсутствующее поле от пустого.
type RewriteRequest struct {
	Text *string `json:"text"`
}

type RewriteResponse struct {
	HumanizedText string `json:"humanized_text"`
}

// BriefRequest тело POST /product-brief.
type BriefRequest struct {
	Idea *string `json:"idea"`
}

type BriefResponse struct {
	Brief string `json:"brief"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
