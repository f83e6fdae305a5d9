// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrMismatchedHashAndPassword is returned when a password does not match
	// the stored hash.
	ErrMismatchedHashAndPassword = errors.New("password does not match hash")
)

// HashPassword returns the salted bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(h), err
}

// ComparePasswordAndHash validates that the cleartext password matches hash.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}
