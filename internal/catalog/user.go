// Cinerec - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package catalog

import (
	"fmt"
	"slices"

	"github.com/tomtom215/cinerec/internal/validation"
)

// User is a validated user record with an ordered list of liked movie ids.
type User struct {
	name        string
	id          string
	likedMovies []string
}

// userInput carries the lexical user rules. Field order is check order.
type userInput struct {
	Name string `validate:"username"`
	ID   string `validate:"userid,len=9"`
}

// NewUser validates name and id and returns a User holding a copy of liked.
// Liked ids are not checked here; the Catalog checks them on insertion.
func NewUser(name, id string, liked []string) (User, error) {
	in := userInput{Name: name, ID: id}
	if verr := validation.ValidateStruct(&in); verr != nil {
		if verr.First().Field() == "Name" {
			return User{}, newError(ErrInvalidName, name,
				fmt.Sprintf("ERROR: User Name %s is wrong", name))
		}
		return User{}, newError(ErrInvalidID, id,
			fmt.Sprintf("ERROR: User Id %s is wrong", id))
	}

	return User{name: name, id: id, likedMovies: slices.Clone(liked)}, nil
}

// Name returns the user name.
func (u User) Name() string {
	return u.name
}

// ID returns the user id.
func (u User) ID() string {
	return u.id
}

// LikedMovies returns a copy of the liked movie ids in input order.
func (u User) LikedMovies() []string {
	return slices.Clone(u.likedMovies)
}

// AddLikedMovie appends id to the liked list. Duplicates are kept.
func (u *User) AddLikedMovie(id string) {
	u.likedMovies = append(u.likedMovies, id)
}

func (u User) clone() User {
	u.likedMovies = slices.Clone(u.likedMovies)
	return u
}
