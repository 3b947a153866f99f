package types

// User is the authenticated identity handed over by the identity provider.
// It is passed explicitly into every service operation.
type User struct {
	ID       string `json:"id" msgpack:"i"`
	Username string `json:"username" msgpack:"u"`
	Email    string `json:"-" msgpack:"e,omitempty"`
}

func (u User) Valid() bool {
	return ValidUUIDv4(u.ID) && u.Username != ""
}
