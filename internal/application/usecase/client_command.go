package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/internal/shared/types"
)

var errNoCredentialStore = errors.New("no credential store configured")

// LifecycleState is the position of a ClientCommand in its run sequence.
type LifecycleState int

const (
	StateInit LifecycleState = iota
	StateProfileResolved
	StateClientBuilt
	StateRunningUserCommand
	StateDone
	StateAborted
)

func (s LifecycleState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateProfileResolved:
		return "profile-resolved"
	case StateClientBuilt:
		return "client-built"
	case StateRunningUserCommand:
		return "running-user-command"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// CommandRunner is the domain logic of a concrete client command.
type CommandRunner interface {
	RunCommand(ctx context.Context, cmd *ClientCommand) error
}

// RunnerFunc adapts a function to CommandRunner.
type RunnerFunc func(ctx context.Context, cmd *ClientCommand) error

// RunCommand calls f.
func (f RunnerFunc) RunCommand(ctx context.Context, cmd *ClientCommand) error {
	return f(ctx, cmd)
}

// ClientCommand resolves a profile into an authenticated client and then
// hands control to its runner. Every failure is reported to the console and
// returned as a *types.AbortError.
type ClientCommand struct {
	// Args holds the base flags; Flags exposes every parsed flag for
	// property mapping.
	Args          *types.CLIArgs
	Flags         repository.FlagBag
	PropertyFlags entity.PropertySchema

	// Set while running.
	CurrentProfile *entity.Profile
	Client         *entity.ClientHandle

	config      *entity.Configuration
	credentials repository.CredentialProvider
	console     types.ConsoleInterface
	runner      CommandRunner
	updater     *ResourceUpdater
	state       LifecycleState
}

// NewClientCommand creates a client command around runner. A nil runner is a
// programmer error.
func NewClientCommand(
	runner CommandRunner,
	config *entity.Configuration,
	credentials repository.CredentialProvider,
	console types.ConsoleInterface,
) (*ClientCommand, error) {
	if runner == nil {
		return nil, &types.ProgrammerError{Missing: "RunCommand"}
	}

	return &ClientCommand{
		Args:        &types.CLIArgs{},
		config:      config,
		credentials: credentials,
		console:     console,
		runner:      runner,
		updater:     NewResourceUpdater(console),
		state:       StateInit,
	}, nil
}

// State returns the current lifecycle state.
func (c *ClientCommand) State() LifecycleState {
	return c.state
}

// Console returns the status channel shared with the runner.
func (c *ClientCommand) Console() types.ConsoleInterface {
	return c.console
}

// Run executes the lifecycle: resolve profile, fetch credentials, build the
// client, run the command.
func (c *ClientCommand) Run(ctx context.Context) error {
	if c.runner == nil {
		return &types.AbortError{Code: types.ExitCodeAbort, Err: &types.ProgrammerError{Missing: "RunCommand"}}
	}
	if c.Args == nil {
		c.Args = &types.CLIArgs{}
	}

	profile, err := ResolveProfile(c.config, c.Args.Profile)
	if err != nil {
		return c.abort(err)
	}
	c.CurrentProfile = profile
	c.console.LogDebug("Using profile: %s", profile.ID)
	c.transition(StateProfileResolved)

	creds, err := c.loadCredentials(ctx, profile)
	if err != nil {
		return c.abort(err)
	}

	client := BuildClient(profile, creds, c.Args.AccountSid)
	c.Client = &client
	c.transition(StateClientBuilt)

	c.transition(StateRunningUserCommand)
	if err := c.runUserCommand(ctx); err != nil {
		var reported *types.AbortError
		if errors.As(err, &reported) {
			c.transition(StateAborted)
			return reported
		}
		var remediable types.Remediable
		if errors.As(err, &remediable) {
			return c.abort(err)
		}
		return c.abort(&types.UnexpectedRuntimeError{Err: err})
	}

	c.transition(StateDone)
	return nil
}

// ParseProperties maps the command's property flags onto API fields.
func (c *ClientCommand) ParseProperties() entity.PropertySet {
	return ParseProperties(c.PropertyFlags, c.Flags)
}

// UpdateResource applies set to the resource sid, falling back to the
// command's own property flags when set is None.
func (c *ClientCommand) UpdateResource(ctx context.Context, factory repository.ResourceFactory, sid string, set entity.PropertySet) entity.UpdateResult {
	if set.IsNone() {
		set = c.ParseProperties()
	}
	return c.updater.Update(ctx, factory, sid, set)
}

func (c *ClientCommand) loadCredentials(ctx context.Context, profile *entity.Profile) (entity.Credentials, error) {
	if profile.Credentials != nil {
		c.console.LogDebug("Using credentials from the environment")
		return *profile.Credentials, nil
	}

	if c.credentials == nil {
		return entity.Credentials{}, &types.CredentialStoreError{ProfileID: profile.ID, Err: errNoCredentialStore}
	}

	creds, err := c.credentials.GetCredentials(ctx, profile.ID)
	if err != nil {
		return entity.Credentials{}, &types.CredentialStoreError{ProfileID: profile.ID, Err: err}
	}
	return creds, nil
}

func (c *ClientCommand) runUserCommand(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.runner.RunCommand(ctx, c)
}

func (c *ClientCommand) abort(err error) error {
	msg := err.Error()

	var remediable types.Remediable
	if errors.As(err, &remediable) {
		msg += "\n" + remediable.Remediation()
	}
	c.console.LogError("%s", msg)

	if cause := errors.Unwrap(err); cause != nil {
		c.console.LogDebug("Caused by: %v", cause)
	}

	c.transition(StateAborted)
	return &types.AbortError{Code: types.ExitCodeAbort, Err: err}
}

func (c *ClientCommand) transition(next LifecycleState) {
	c.console.LogDebug("Command state: %s -> %s", c.state, next)
	c.state = next
}
