package repository

// Page paginación limit/offset para listados.
type Page struct {
	Limit  int
	Offset int
}
