package models

// Operator is a back-office user account stored locally; hotel guests and
// members live behind the backend and stay opaque records.
type Operator struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}
