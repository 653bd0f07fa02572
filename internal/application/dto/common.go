package dto

// PageQuery parámetros de paginación de los listados (1-indexado).
type PageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica clamping: page < 1 se lleva a 1 y limit < 1 toma el default
// indicado. Los valores fuera de rango nunca llegan al repositorio.
func (p *PageQuery) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// Offset convierte la página 1-indexada en offset de la consulta.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages calcula ceil(total/limit) para el sobre de paginación.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
