package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sparxrahulpawar/tsxChat/internal/adapter"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// Usage lists the supported subcommands.
const Usage = `usage: tsxchat-client [-server URL] [-timeout D] [-token-file PATH] <command> [flags]

commands:
  signup -fullname NAME -email EMAIL -password PASSWORD
  login -email EMAIL -password PASSWORD
  me
  logout
  onboarding status
  onboarding step -step welcome|profile|preferences [-data JSON]
  onboarding complete
  onboarding reset
  version`

type App struct {
	api    adapter.APIClient
	tokens TokenStore
	out    io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.APIClient, tokens TokenStore, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, tokens: tokens, out: out, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.api.SetToken(token)

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Bool("has_token", token != "").Msg("running command")

	switch command {
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "me":
		return a.me(ctx)
	case "logout":
		return a.logout(ctx)
	case "onboarding":
		return a.onboarding(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) signup(ctx context.Context, args []string) error {
	var req models.SignupRequest
	fs := newFlagSet("signup")
	fs.StringVar(&req.Fullname, "fullname", "", "full name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	result, err := a.api.Signup(ctx, req)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(result.Token); err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	result, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(result.Token); err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

// logout forgets the local token even when the server no longer knows the
// session.
func (a *App) logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	if err != nil && !errors.Is(err, adapter.ErrBadRequest) {
		return err
	}

	if clearErr := a.tokens.Clear(); clearErr != nil {
		return clearErr
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) onboarding(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: onboarding needs one of status, step, complete, reset", ErrInvalidArgs)
	}

	var (
		result models.Onboarding
		err    error
	)

	switch args[0] {
	case "status":
		result, err = a.api.OnboardingStatus(ctx)
	case "step":
		var req models.OnboardingStepRequest
		req, err = parseStepArgs(args[1:])
		if err != nil {
			return err
		}
		result, err = a.api.UpdateOnboardingStep(ctx, req)
	case "complete":
		result, err = a.api.CompleteOnboarding(ctx)
	case "reset":
		result, err = a.api.ResetOnboarding(ctx)
	default:
		return fmt.Errorf("%w: onboarding %q", ErrUnknownCommand, args[0])
	}
	if err != nil {
		return err
	}

	return a.print(result)
}

func parseStepArgs(args []string) (models.OnboardingStepRequest, error) {
	var step, data string
	fs := newFlagSet("onboarding step")
	fs.StringVar(&step, "step", "", "step name")
	fs.StringVar(&data, "data", "", "step data as JSON")
	if err := fs.Parse(args); err != nil {
		return models.OnboardingStepRequest{}, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}

	req := models.OnboardingStepRequest{Step: models.OnboardingStep(step)}
	if data != "" {
		if !json.Valid([]byte(data)) {
			return models.OnboardingStepRequest{}, fmt.Errorf("%w: -data is not valid JSON", ErrInvalidArgs)
		}
		req.Data = json.RawMessage(data)
	}

	return req, nil
}

func (a *App) version(ctx context.Context) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
