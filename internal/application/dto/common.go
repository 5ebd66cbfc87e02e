package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeleteManyRequest lote de claves a borrar (proveedores o artículos).
type DeleteManyRequest struct {
	Keys []string `json:"keys"`
}

// DeleteManyResponse resultado por clave: "" = borrado OK, si no el motivo.
type DeleteManyResponse struct {
	Results map[string]string `json:"results"`
}
