package models

// Valores especiales del catálogo.
const (
	BadgeExclusive   = "Más vendido"
	PriceOnRequest   = "Consultar"
	DefaultImagePath = "img/default.jpg"
)

// Product define la estructura de un producto del catálogo.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"` // "parrilla" o "articulo"
	Price       string `json:"price"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	Image       string `json:"image"`
}

// ProductList es el catálogo completo, en orden de alta.
type ProductList []Product

// DefaultProducts devuelve el catálogo inicial vacío.
func DefaultProducts() ProductList {
	return ProductList{}
}

// IndexOf devuelve la posición del producto con el id dado, o -1.
func (pl ProductList) IndexOf(id string) int {
	for i := range pl {
		if pl[i].ID == id {
			return i
		}
	}
	return -1
}

// ClearExclusiveBadge quita la insignia exclusiva de todos los productos
// salvo el indicado, de modo que a lo sumo uno la conserve.
func (pl ProductList) ClearExclusiveBadge(exceptID string) {
	for i := range pl {
		if pl[i].ID != exceptID && pl[i].Badge == BadgeExclusive {
			pl[i].Badge = ""
		}
	}
}
