package service

import (
	"context"
	"errors"
	"sync"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/pkg/mailer"
	"vibe-notes-be/internal/repository/contract"
	"vibe-notes-be/internal/repository/specification"
	"vibe-notes-be/internal/repository/unitofwork"
	"vibe-notes-be/pkg/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errStorage = errors.New("connection reset by peer")

func nopLogger() logger.ILogger {
	return logger.NewFromZap(zap.NewNop())
}

// fakeDB is an in-memory stand-in for the relational store. Ownership
// filters are honoured the same way the SQL would.
type fakeDB struct {
	mu         sync.Mutex
	notes      map[uuid.UUID]*entity.Note
	recipients []entity.NoteRecipient
	profiles   map[uuid.UUID]*entity.Profile
	users      map[uuid.UUID]*entity.User

	noteErr      error
	recipientErr error
	profileErr   error
	userErr      error
	commits      int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		notes:    make(map[uuid.UUID]*entity.Note),
		profiles: make(map[uuid.UUID]*entity.Profile),
		users:    make(map[uuid.UUID]*entity.User),
	}
}

func (db *fakeDB) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{db: db}
}

type fakeUow struct {
	db     *fakeDB
	inTx   bool
	staged []func()
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	for _, apply := range u.staged {
		apply()
	}
	u.staged = nil
	u.inTx = false
	u.db.commits++
	return nil
}

func (u *fakeUow) Rollback() error {
	u.staged = nil
	u.inTx = false
	return nil
}

// write applies immediately outside a transaction and on Commit inside one.
func (u *fakeUow) write(apply func()) {
	if u.inTx {
		u.staged = append(u.staged, apply)
		return
	}
	apply()
}

func (u *fakeUow) UserRepository() contract.UserRepository       { return fakeUserRepo{u} }
func (u *fakeUow) ProfileRepository() contract.ProfileRepository { return fakeProfileRepo{u} }
func (u *fakeUow) NoteRepository() contract.NoteRepository       { return fakeNoteRepo{u} }
func (u *fakeUow) NoteRecipientRepository() contract.NoteRecipientRepository {
	return fakeRecipientRepo{u}
}

type fakeNoteRepo struct{ u *fakeUow }

func (r fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	if r.u.db.noteErr != nil {
		return r.u.db.noteErr
	}
	n := *note
	r.u.write(func() {
		r.u.db.mu.Lock()
		defer r.u.db.mu.Unlock()
		r.u.db.notes[n.Id] = &n
	})
	return nil
}

func (r fakeNoteRepo) UpdateOwned(ctx context.Context, note *entity.Note) (int64, error) {
	if r.u.db.noteErr != nil {
		return 0, r.u.db.noteErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	existing, ok := r.u.db.notes[note.Id]
	if !ok || existing.UserId != note.UserId {
		return 0, nil
	}
	existing.Title = note.Title
	existing.Body = note.Body
	return 1, nil
}

func (r fakeNoteRepo) DeleteOwned(ctx context.Context, id uuid.UUID, userId uuid.UUID) (int64, error) {
	if r.u.db.noteErr != nil {
		return 0, r.u.db.noteErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	existing, ok := r.u.db.notes[id]
	if !ok || existing.UserId != userId {
		return 0, nil
	}
	delete(r.u.db.notes, id)
	kept := r.u.db.recipients[:0]
	for _, rec := range r.u.db.recipients {
		if rec.NoteId != id {
			kept = append(kept, rec)
		}
	}
	r.u.db.recipients = kept
	return 1, nil
}

func (r fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	notes, err := r.FindAll(ctx, specs...)
	if err != nil || len(notes) == 0 {
		return nil, err
	}
	return notes[0], nil
}

func (r fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.u.db.noteErr != nil {
		return nil, r.u.db.noteErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()

	var out []*entity.Note
	for _, n := range r.u.db.notes {
		if !noteMatches(n, specs) {
			continue
		}
		copied := *n
		for _, rec := range r.u.db.recipients {
			if rec.NoteId == n.Id {
				copied.Recipients = append(copied.Recipients, rec)
			}
		}
		out = append(out, &copied)
	}
	return out, nil
}

func (r fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	notes, err := r.FindAll(ctx, specs...)
	return int64(len(notes)), err
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.NoteOwnedByUser:
			if n.UserId != s.UserID {
				return false
			}
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeRecipientRepo struct{ u *fakeUow }

func (r fakeRecipientRepo) CreateBatch(ctx context.Context, recipients []entity.NoteRecipient) error {
	if r.u.db.recipientErr != nil {
		return r.u.db.recipientErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	r.u.db.recipients = append(r.u.db.recipients, recipients...)
	return nil
}

func (r fakeRecipientRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.NoteRecipient, error) {
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	var out []entity.NoteRecipient
	for _, rec := range r.u.db.recipients {
		keep := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByNoteID); ok && rec.NoteId != s.NoteID {
				keep = false
			}
		}
		if keep {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeProfileRepo struct{ u *fakeUow }

func (r fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if r.u.db.profileErr != nil {
		return r.u.db.profileErr
	}
	p := *profile
	r.u.write(func() {
		r.u.db.mu.Lock()
		defer r.u.db.mu.Unlock()
		r.u.db.profiles[p.Id] = &p
	})
	return nil
}

func (r fakeProfileRepo) UpdateOwned(ctx context.Context, profile *entity.Profile) (int64, error) {
	if r.u.db.profileErr != nil {
		return 0, r.u.db.profileErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	existing, ok := r.u.db.profiles[profile.Id]
	if !ok {
		return 0, nil
	}
	existing.FullName = profile.FullName
	existing.AvatarURL = profile.AvatarURL
	return 1, nil
}

func (r fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	if r.u.db.profileErr != nil {
		return nil, r.u.db.profileErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			if p, found := r.u.db.profiles[s.ID]; found {
				copied := *p
				return &copied, nil
			}
		}
	}
	return nil, nil
}

type fakeUserRepo struct{ u *fakeUow }

func (r fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.u.db.userErr != nil {
		return r.u.db.userErr
	}
	usr := *user
	r.u.write(func() {
		r.u.db.mu.Lock()
		defer r.u.db.mu.Unlock()
		r.u.db.users[usr.Id] = &usr
	})
	return nil
}

func (r fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.u.db.userErr != nil {
		return nil, r.u.db.userErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	for _, usr := range r.u.db.users {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByEmail); ok && usr.Email != s.Email {
				match = false
			}
		}
		if match {
			copied := *usr
			return &copied, nil
		}
	}
	return nil, nil
}

func (r fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (int64, error) {
	if r.u.db.userErr != nil {
		return 0, r.u.db.userErr
	}
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	usr, ok := r.u.db.users[id]
	if !ok {
		return 0, nil
	}
	usr.PasswordHash = hash
	return 1, nil
}

func (r fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.u.db.mu.Lock()
	defer r.u.db.mu.Unlock()
	return int64(len(r.u.db.users)), nil
}

type fakeIdentity struct {
	caller *entity.Caller
	err    error
	ended  []string
}

func (f *fakeIdentity) CurrentCaller(ctx context.Context, token string) (*entity.Caller, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token == "" {
		return nil, nil
	}
	return f.caller, nil
}

func (f *fakeIdentity) EndSession(ctx context.Context, token string) error {
	f.ended = append(f.ended, token)
	return nil
}

type fakeProvider struct {
	configured bool
	deliveryId string
	err        error
	sent       []*mailer.Message
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Send(ctx context.Context, msg *mailer.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.err != nil {
		return "", f.err
	}
	return f.deliveryId, nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakeEvents) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType())
	}
	return out
}
