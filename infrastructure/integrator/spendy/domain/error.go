package spendydomain

// ErrorResponse cobre os formatos de erro devolvidos pelo backend Spendy
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status,omitempty"`
}

// Text devolve a primeira mensagem não vazia
func (e *ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
