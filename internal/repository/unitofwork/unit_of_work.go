package unitofwork

import (
	"context"

	"vibe-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	NoteRepository() contract.NoteRepository
	NoteRecipientRepository() contract.NoteRecipientRepository
}
