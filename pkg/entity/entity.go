package entity

import (
	"fmt"
	"strings"
)

// Entity is a simulated person with a name and a fixed friend list.
// Friendship is directed: B appearing in A's friends says nothing about A
// appearing in B's.
type Entity struct {
	Name    string
	Friends []*Entity
}

// New creates an entity whose friends are stubs built from friendNames.
func New(name string, friendNames ...string) *Entity {
	friends := make([]*Entity, 0, len(friendNames))
	for _, friend := range friendNames {
		friends = append(friends, &Entity{Name: friend})
	}
	return &Entity{Name: name, Friends: friends}
}

// FriendNames returns the names of the entity's friends in list order
func (e *Entity) FriendNames() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Friends))
	for _, friend := range e.Friends {
		names = append(names, friend.Name)
	}
	return names
}

// HasFriend reports whether name is in the entity's friend list
func (e *Entity) HasFriend(name string) bool {
	if e == nil {
		return false
	}
	for _, friend := range e.Friends {
		if friend.Name == name {
			return true
		}
	}
	return false
}

// IsStub reports whether the entity carries no friend list of its own.
func (e *Entity) IsStub() bool {
	return e != nil && len(e.Friends) == 0
}

// Validate checks the invariants of a single entity.
func (e *Entity) Validate() error {
	if e == nil {
		return fmt.Errorf("entity is nil")
	}
	if e.Name == "" {
		return fmt.Errorf("entity name is required")
	}
	seen := make(map[string]struct{}, len(e.Friends))
	for _, friend := range e.Friends {
		if friend == nil || friend.Name == "" {
			return fmt.Errorf("entity %s: friend name is required", e.Name)
		}
		if friend.Name == e.Name {
			return fmt.Errorf("entity %s: cannot be its own friend", e.Name)
		}
		if _, ok := seen[friend.Name]; ok {
			return fmt.Errorf("entity %s: duplicate friend %s", e.Name, friend.Name)
		}
		seen[friend.Name] = struct{}{}
	}
	return nil
}

func (e *Entity) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s [%s]", e.Name, strings.Join(e.FriendNames(), ", "))
}
