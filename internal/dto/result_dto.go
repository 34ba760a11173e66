package dto

import "github.com/google/uuid"

type ResultStatus string

const (
	ResultOk              ResultStatus = "ok"
	ResultFailed          ResultStatus = "failed"
	ResultUnauthenticated ResultStatus = "unauthenticated"
	ResultAuthError       ResultStatus = "auth_error"
)

// CommandResult is returned exactly once per command. Warnings carry
// best-effort steps that failed without failing the command.
type CommandResult struct {
	Status     ResultStatus `json:"status"`
	Success    bool         `json:"success"`
	Error      string       `json:"error,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
	NoteId     *uuid.UUID   `json:"note_id,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
}

func OkResult() *CommandResult {
	return &CommandResult{Status: ResultOk, Success: true}
}

func FailedResult(message string) *CommandResult {
	return &CommandResult{Status: ResultFailed, Error: message}
}

func AuthErrorResult(message string) *CommandResult {
	return &CommandResult{Status: ResultAuthError, Error: message}
}

func UnauthenticatedResult(redirectTo string) *CommandResult {
	return &CommandResult{Status: ResultUnauthenticated, Error: "Not authenticated", RedirectTo: redirectTo}
}

func (r *CommandResult) Warn(message string) {
	r.Warnings = append(r.Warnings, message)
}
