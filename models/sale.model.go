package models

// Sale representa una venta cargada a mano desde el panel.
type Sale struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Product   string  `json:"product"`
	Amount    float64 `json:"amount"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// SaleInput es el cuerpo de alta y edición de ventas. La edición
// no toca las notas.
type SaleInput struct {
	Date    string  `json:"date"`
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Notes   string  `json:"notes"`
}
