package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorMessages flattens errors for the response body; the error type
// itself does not marshal to anything useful.
func ErrorMessages(errors []error) []string {
	messages := make([]string, 0, len(errors))
	for _, err := range errors {
		messages = append(messages, err.Error())
	}
	return messages
}
