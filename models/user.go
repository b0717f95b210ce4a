package models

// User is a registered account record exchanged with the API.
//
// Like [Message], a User is immutable once created: the client may list and
// create users but never updates or removes them.
type User struct {
	// ID is the server-assigned identifier. Zero (and omitted from JSON)
	// until the server has persisted the record.
	ID int64 `json:"id,omitempty"`

	// Username is the display handle. Required; non-empty after trim.
	Username string `json:"username"`

	// Email is the contact address. Required; non-empty after trim and
	// unique across all users.
	Email string `json:"email"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
