package httpx

// Pagination bounds shared by the list endpoints.
const (
	defaultPageSize = 50
	maxPageSize     = 200
)
