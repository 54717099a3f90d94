package entity

// Product entrada del catálogo de productos de la tienda. Es data de referencia
// sembrada al arranque; el asistente la serializa completa como contexto.
// Price es una banda de precio ("$", "$$", "$$$"), no un monto.
type Product struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Notes    string `json:"notes"`
}
