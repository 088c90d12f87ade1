package models

type User struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	AffiliationID int64     `json:"affiliationId"`
	Role          string    `json:"role"`
	CreatedAt     Timestamp `json:"createdAt"`
}
