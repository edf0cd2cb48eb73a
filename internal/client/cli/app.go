// Package cli implements the interactive command-line client for the auth
// service: register, login, verify, and a server health probe.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mp28jam28/board-auth/internal/client/api"
	"github.com/mp28jam28/board-auth/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client
	reader *bufio.Reader
	out    io.Writer

	// token holds the session token of the last successful login,
	// kept only for the lifetime of the process.
	token string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerURL),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "auth client (%s)\n", a.config.ServerURL)

	for {
		cmd, err := GetSimpleText(a.reader, "Command (register, login, verify, health, quit)", a.out)
		if err != nil {
			return
		}

		switch strings.ToLower(cmd) {
		case "register":
			a.runCommand(ctx, a.Register)
		case "login":
			a.runCommand(ctx, a.Login)
		case "verify":
			a.runCommand(ctx, a.Verify)
		case "health":
			a.runCommand(ctx, a.Health)
		case "quit", "exit", "q":
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		}
	}
}

func (a *App) runCommand(ctx context.Context, cmd func(context.Context) error) {
	if err := cmd(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
	}
}
