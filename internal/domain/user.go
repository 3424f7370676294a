package domain

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}

// Owner is the public view of a User attached to a booking listing.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
