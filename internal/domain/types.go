package domain

// ID is used across local (non-backend) entities such as operators.
type ID int64

// Pagination carries paging params and derived totals for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// RequestContext carries authenticated operator info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}
