package userdirectory

import (
	"sort"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/core"
)

// UserDirectory is the view model rendered by the user directory feature.
type UserDirectory struct {
	Users []core.LocalUser
	Count int
}

// ProjectUserDirectory builds the view model from the endpoint payload.
// It narrows every user to the rendered field subset and orders the
// directory by name for a stable display.
//
// Pure function: no side effects, no infrastructure dependencies.
func ProjectUserDirectory(users []core.User) UserDirectory {
	localUsers := core.ToLocalUsers(users)

	sort.SliceStable(localUsers, func(i int, j int) bool {
		return localUsers[i].Name < localUsers[j].Name
	})

	return UserDirectory{
		Users: localUsers,
		Count: len(localUsers),
	}
}
