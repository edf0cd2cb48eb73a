package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mp28jam28/board-auth/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new user.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Enter department (optional)", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (optional)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, api.RegisterParams{
		Username:   username,
		Email:      email,
		Name:       name,
		Password:   password,
		Department: department,
		Role:       role,
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and stores the issued token for the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.token = token
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Verify checks the stored session token (or one entered by hand) and prints
// the claims it carries.
func (a *App) Verify(ctx context.Context) error {
	token := a.token
	if token == "" {
		entered, err := getSimpleText(a.reader, "Enter token", a.out)
		if err != nil {
			return err
		}
		token = entered
	}

	claims, err := a.client.Verify(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Token is valid for %s <%s>", claims.Username, claims.Email)
	if claims.Role != "" {
		fmt.Fprintf(a.out, " role=%s", claims.Role)
	}
	fmt.Fprintf(a.out, ", expires %s\n", time.Unix(claims.ExpiresAt, 0).Format(time.RFC3339))
	return nil
}

// Health probes the server's liveness endpoint.
func (a *App) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.client.Health(ctx); err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}

	fmt.Fprintln(a.out, "Server OK")
	return nil
}
