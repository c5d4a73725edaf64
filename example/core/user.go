package core

type UserIDInt = int

// User is the data contract of the remote user endpoint. Every field the
// endpoint exposes is typed explicitly - no dynamic maps cross a component
// boundary.
type User struct {
	ID      UserIDInt `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Website string    `json:"website"`
}

// LocalUser is the field subset the user directory actually renders.
// Narrowing the contract here keeps the rendering layer independent of
// endpoint fields it never uses.
type LocalUser struct {
	ID   UserIDInt
	Name string
}

// ToLocalUser maps an endpoint User to the rendered field subset.
func ToLocalUser(user User) LocalUser {
	return LocalUser{
		ID:   user.ID,
		Name: user.Name,
	}
}

// ToLocalUsers maps a slice of endpoint Users to the rendered field subset,
// preserving order.
func ToLocalUsers(users []User) []LocalUser {
	localUsers := make([]LocalUser, 0, len(users))
	for _, user := range users {
		localUsers = append(localUsers, ToLocalUser(user))
	}

	return localUsers
}
