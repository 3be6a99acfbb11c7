package testmodels

import (
	"time"
)

type User struct {
	ID      int            `json:"id"`
	Name    string         `json:"full_name"`
	Info    Detail         `json:"info"`
	Roles   []string       `json:"roles"`
	Score   map[string]int `json:"score"`
	Manager *User          `json:"manager,omitempty"`
	Joined  time.Time      `json:"joined"`
	Cache   *Cache         `json:"cache" deep:"shared"`
	age     int            // Unexported field
	token   []byte
}

type Detail struct {
	Age     int
	Address string `json:"addr"`
}

// Cache stands for a process wide handle that copies of a User share.
type Cache struct {
	Hits int
}

// NewUser creates a new User with the given unexported age.
func NewUser(id int, name string, age int) *User {
	return &User{
		ID:     id,
		Name:   name,
		Roles:  []string{},
		Score:  map[string]int{},
		Joined: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		age:    age,
		token:  []byte{byte(id)},
	}
}

// SetAge sets the unexported age field.
func (u *User) SetAge(age int) {
	u.age = age
}

// SetToken sets the unexported token.
func (u *User) SetToken(token []byte) {
	u.token = token
}

// Clone returns a deep copy of u. Managers are cloned recursively, the
// Cache handle is shared.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = append([]string{}, u.Roles...)
	c.Score = make(map[string]int, len(u.Score))
	for k, v := range u.Score {
		c.Score[k] = v
	}
	c.Manager = u.Manager.Clone()
	c.token = append([]byte{}, u.token...)
	return &c
}
