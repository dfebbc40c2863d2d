package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-api-hub/internal/adapter"
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: api-hub-client [global flags] <command> [flags]

commands:
  signup      --email --password --name
  login       --email --password [--description]
  me
  logout
  rotate      [--keep-old] [--description]
  tokens
  revoke      --token-value
  revoke-all
  todos       [--completed] [--search] [--page] [--page-size]
  todo        --title [--description] [--public]
  note        --title --content [--public]
  shorten     --url [--public]
  version
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	global := pflag.NewFlagSet("api-hub-client", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	global.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "server base URL")
	global.StringVar(&cfg.Token, "token", cfg.Token, "bearer token")
	global.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")
	verbose := global.BoolP("verbose", "v", false, "log requests")
	if err = global.Parse(args); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.NewConsoleLogger("api-hub-client", level)

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errors.New("no command given")
	}

	client, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		return err
	}

	cmd := &command{client: client, out: out}
	return cmd.dispatch(context.Background(), rest[0], rest[1:])
}

type command struct {
	client adapter.APIClient
	out    io.Writer
}

func (c *command) dispatch(ctx context.Context, name string, args []string) error {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	switch name {
	case "signup":
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		userName := fs.String("name", "", "display name")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.print(c.client.Signup(ctx, models.SignupRequest{Email: *email, Password: *password, Name: *userName}))

	case "login":
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		description := fs.String("description", "", "label of the new token")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.print(c.client.Login(ctx, models.LoginRequest{Email: *email, Password: *password, Description: *description}))

	case "me":
		return c.print(c.client.Me(ctx))

	case "logout":
		return c.client.Logout(ctx)

	case "rotate":
		keepOld := fs.Bool("keep-old", false, "keep the current token active")
		description := fs.String("description", "", "label of the new token")
		if err := fs.Parse(args); err != nil {
			return err
		}
		revokeOld := !*keepOld
		return c.print(c.client.Rotate(ctx, models.RotateRequest{RevokeOld: &revokeOld, Description: *description}))

	case "tokens":
		return c.print(c.client.ListTokens(ctx))

	case "revoke":
		token := fs.String("token-value", "", "token to revoke")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.client.Revoke(ctx, *token)

	case "revoke-all":
		n, err := c.client.RevokeAll(ctx)
		return c.print(models.RevokeAllResponse{Revoked: n}, err)

	case "todos":
		query := url.Values{}
		completed := fs.String("completed", "", "filter by completion (true/false)")
		search := fs.String("search", "", "search term")
		page := fs.String("page", "", "page number")
		pageSize := fs.String("page-size", "", "page size")
		if err := fs.Parse(args); err != nil {
			return err
		}
		for key, value := range map[string]string{"completed": *completed, "q": *search, "page": *page, "pageSize": *pageSize} {
			if value != "" {
				query.Set(key, value)
			}
		}
		return c.print(c.client.ListTodos(ctx, query))

	case "todo":
		title := fs.String("title", "", "todo title")
		description := fs.String("description", "", "todo description")
		public := fs.Bool("public", false, "make the todo public")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.print(c.client.CreateTodo(ctx, models.TodoInput{Title: *title, Description: *description, IsPublic: public}))

	case "note":
		title := fs.String("title", "", "note title")
		content := fs.String("content", "", "markdown content, @file reads a file")
		public := fs.Bool("public", false, "make the note public")
		if err := fs.Parse(args); err != nil {
			return err
		}
		body, err := readContent(*content)
		if err != nil {
			return err
		}
		return c.print(c.client.CreateNote(ctx, models.NoteInput{Title: *title, Content: body, IsPublic: public}))

	case "shorten":
		target := fs.String("url", "", "URL to shorten")
		public := fs.Bool("public", true, "make the link public")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.print(c.client.Shorten(ctx, models.URLInput{OriginalURL: *target, IsPublic: public}))

	case "version":
		v, err := c.client.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "client: %s (%s, %s)\nserver: %s\n",
			orNotAvailable(buildVersion), orNotAvailable(buildDate), orNotAvailable(buildCommit), v)
		return nil

	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

// print writes v as indented JSON unless err is set.
func (c *command) print(v any, err error) error {
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readContent(value string) (string, error) {
	path, ok := strings.CutPrefix(value, "@")
	if !ok {
		return value, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read note content: %w", err)
	}
	return string(data), nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
