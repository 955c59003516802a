package dto

// ErrorResponse is the generic error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ValidationErrorResponse carries per-field messages so a client can
// redisplay the form with errors next to each field
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
	Code   int                 `json:"code"`
}

// FormResponse describes the fields a form endpoint expects
type FormResponse struct {
	Fields []FormField `json:"fields"`
}

type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}
