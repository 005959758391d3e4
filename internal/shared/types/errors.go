package types

import (
	"errors"
	"fmt"
)

// CLIName is the executable name used in remediation hints.
const CLIName = "twilio"

// ExitCodeAbort is requested on every abort path.
const ExitCodeAbort = 1

var (
	ErrInvalidAccountSid = errors.New("account SID must be \"AC\" followed by 32 hexadecimal characters")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrUnknownStore      = errors.New("unknown credential store")
)

// EnvironmentVariablesHelp describes how to run without a stored profile.
const EnvironmentVariablesHelp = `Alternatively, twilio can use credentials stored in environment variables:

# OPTION 1 (recommended)
TWILIO_ACCOUNT_SID = your Account SID from twil.io/console
TWILIO_API_KEY = an API Key created at twil.io/get-api-key
TWILIO_API_SECRET = the secret for the API Key

# OPTION 2
TWILIO_ACCOUNT_SID = your Account SID from twil.io/console
TWILIO_AUTH_TOKEN = your Auth Token from twil.io/console

Once these environment variables are set, a twilio profile is not required.`

// Remediable is implemented by errors that can tell the user how to recover.
type Remediable interface {
	Remediation() string
}

// ProgrammerError indicates a command was assembled without a required capability.
type ProgrammerError struct {
	Missing string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("programmer error: command is missing its %s implementation", e.Missing)
}

// NoProfileError is returned when the requested or active profile is not configured.
type NoProfileError struct {
	ProfileID string
	Explicit  bool
}

func (e *NoProfileError) Error() string {
	if e.ProfileID == "" {
		return "No profile configured."
	}
	return fmt.Sprintf("No profile configured with name %q.", e.ProfileID)
}

// Remediation implements Remediable.
func (e *NoProfileError) Remediation() string {
	cmd := CLIName + " profiles:add"
	if e.Explicit {
		cmd += " -p " + e.ProfileID
	}
	return "To add the profile, run: " + cmd + "\n\n" + EnvironmentVariablesHelp
}

// CredentialStoreError wraps a failed credential lookup.
type CredentialStoreError struct {
	ProfileID string
	Err       error
}

func (e *CredentialStoreError) Error() string {
	return fmt.Sprintf("Could not get credentials for profile %q", e.ProfileID)
}

func (e *CredentialStoreError) Unwrap() error {
	return e.Err
}

// Remediation implements Remediable.
func (e *CredentialStoreError) Remediation() string {
	return fmt.Sprintf("To reconfigure the profile, run: %s profiles:add -p %s", CLIName, e.ProfileID)
}

// UnexpectedRuntimeError wraps a failure raised by a command's own logic.
type UnexpectedRuntimeError struct {
	Err error
}

func (e *UnexpectedRuntimeError) Error() string {
	return fmt.Sprintf("%s encountered an unexpected error. To report this issue, run the command again with \"-l debug\" and include the output: %v",
		CLIName, e.Err)
}

func (e *UnexpectedRuntimeError) Unwrap() error {
	return e.Err
}

// ResourceUpdateError is a rejected update of a single resource.
type ResourceUpdateError struct {
	Sid string
	Err error
}

func (e *ResourceUpdateError) Error() string {
	return fmt.Sprintf("update of %s failed: %v", e.Sid, e.Err)
}

func (e *ResourceUpdateError) Unwrap() error {
	return e.Err
}

// AbortError carries the exit code of a command that has already reported its failure.
type AbortError struct {
	Code int
	Err  error
}

func (e *AbortError) Error() string {
	return e.Err.Error()
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err: 0 for nil, the abort code
// for an AbortError, and ExitCodeAbort otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var abort *AbortError
	if errors.As(err, &abort) {
		return abort.Code
	}
	return ExitCodeAbort
}
