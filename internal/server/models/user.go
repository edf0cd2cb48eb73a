// Package models defines server-side data models persisted in the user store.
package models

// User is a stored credential record, uniquely addressed by Username.
// PasswordHash is produced by the password hasher and is never the plaintext.
// Username and PasswordHash are write-once: there is no update path for them.
type User struct {
	Username     string `db:"username" dynamodbav:"username"`
	Email        string `db:"email" dynamodbav:"email"`
	Name         string `db:"name" dynamodbav:"name"`
	PasswordHash string `db:"password_hash" dynamodbav:"password"`
	Department   string `db:"department" dynamodbav:"department,omitempty"`
	Role         string `db:"role" dynamodbav:"role,omitempty"`
}
