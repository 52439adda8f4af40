package validation_test

import (
	"github.com/dmitrymomot/validation/pkg/validation"
)

type address struct {
	city string
	zip  string
}

func (a *address) GetCity() string { return a.city }
func (a *address) GetZip() string  { return a.zip }

type user struct {
	email   string
	tags    []string
	address *address
	active  bool
	friends []*user
}

func (u *user) GetEmail() string       { return u.email }
func (u *user) SetEmail(email string)  { u.email = email }
func (u *user) GetTags() []string      { return u.tags }
func (u *user) GetAddress() *address   { return u.address }
func (u *user) IsActive() bool         { return u.active }
func (u *user) GetFriends() []*user    { return u.friends }
func (u *user) HasFriends() bool       { return len(u.friends) > 0 }
func (u *user) SetFriends(f []*user)   { u.friends = f }
func (u *user) GetBroken(x int) string { return "" }

// userProxy stands in for a user that has not been loaded yet.
type userProxy struct {
	*user
}

func (p *userProxy) ProxiedClass() string { return validation.ClassFor[user]() }

// document is a map-backed object with an explicit class.
type document map[string]any

func (document) ValidationClass() string { return "document" }

// failWith reports one error with key for every value it sees.
func failWith(key string) validation.Constraint {
	return validation.ConstraintFunc(func(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
		return validation.Errors{validation.NewError(path, key, value, nil)}, nil
	})
}

func registryOf(mappings ...*validation.ObjectMapping) *validation.Registry {
	providers := make([]validation.Provider, len(mappings))
	for i, m := range mappings {
		providers[i] = validation.ProvideMapping(m)
	}
	return validation.MustNewRegistry(providers)
}
