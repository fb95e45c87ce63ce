// Package auth implements the password gate that protects the diary.
//
// A single credential file holds the lowercase hex SHA-256 digest of the
// password. Its presence is the only thing that distinguishes a first run
// from a returning user: on a first run the entered password is hashed and
// stored, afterwards entered passwords are hashed and compared with it.
//
// Authenticator owns the credential file. Gate drives the login flow on top
// of it and reports one of the State values after every submission; only
// StateAccepted unlocks the diary.
package auth
