package users

// Registry lists the known user ids in registration order.
// Current is the id the clients preselect, it is kept as stored.
type Registry struct {
	Users   []string `json:"users"`
	Current string   `json:"current"`
}

func DefaultRegistry() Registry {
	return Registry{
		Users:   []string{"WAKASA", "TEZUKA"},
		Current: "WAKASA",
	}
}

func (r Registry) Contains(user string) bool {
	for _, u := range r.Users {
		if u == user {
			return true
		}
	}
	return false
}
