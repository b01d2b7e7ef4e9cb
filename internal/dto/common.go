package dto

// Pagination echoes the page window of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count from the total matching rows.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Envelope is the uniform response body: status is "success" or "error",
// data carries the payload, message the human-readable note. List responses
// attach pagination; validation failures attach the field error map.
type Envelope struct {
	Status     string            `json:"status"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func SuccessWithMessage(data any, message string) Envelope {
	return Envelope{Status: "success", Data: data, Message: message}
}

func SuccessPaginated(data any, p Pagination) Envelope {
	return Envelope{Status: "success", Data: data, Pagination: &p}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

func ValidationFailed(message string, fields map[string]string) Envelope {
	return Envelope{Status: "error", Message: message, Errors: fields}
}
