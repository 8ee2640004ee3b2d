package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// IDResponse respuesta mínima de creación.
type IDResponse struct {
	ID string `json:"id"`
}
