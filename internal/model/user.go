// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// USER STRUCTURE
// =============================================================================

// User represents a person tasks can be assigned to.
type User struct {
	// ID is the unique identifier for this user
	ID string

	// FirstName and LastName are the name components
	FirstName string
	LastName  string

	// DisplayName overrides the assembled name when set
	DisplayName string

	// AvatarRef is an opaque reference to an avatar image
	AvatarRef string
}

// Name returns the best display name available for the user.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.ID
}

// UserIndex is a lookup table from user id to user.
type UserIndex map[string]User

// IndexUsers builds a UserIndex from a user slice.
func IndexUsers(users []User) UserIndex {
	idx := make(UserIndex, len(users))
	for _, u := range users {
		idx[u.ID] = u
	}
	return idx
}

// NameFor resolves a user id to a display name, or "" when unknown.
func (idx UserIndex) NameFor(id string) string {
	if u, ok := idx[id]; ok {
		return u.Name()
	}
	return ""
}
