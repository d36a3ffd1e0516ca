package domain

type User struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Preferences []Topic `json:"preferences"`
}
