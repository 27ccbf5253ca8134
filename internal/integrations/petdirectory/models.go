package petdirectory

// Pet модель питомца из справочника клиентов
type Pet struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Species    string `json:"species"` // dog, cat, ...
	Breed      string `json:"breed,omitempty"`
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
