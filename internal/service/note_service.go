package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"
	"vibe-notes-be/internal/pkg/identity"
	"vibe-notes-be/internal/pkg/logger"
	"vibe-notes-be/internal/repository/specification"
	"vibe-notes-be/internal/repository/unitofwork"
	"vibe-notes-be/pkg/events"
	"vibe-notes-be/pkg/recipients"
	"vibe-notes-be/pkg/store"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, token string, req *dto.CreateNoteRequest) *dto.CommandResult
	Update(ctx context.Context, token string, req *dto.UpdateNoteRequest) *dto.CommandResult
	Delete(ctx context.Context, token string, id uuid.UUID) *dto.CommandResult
	// List returns the caller's notes newest first. The result reports the
	// authentication outcome; notes is nil unless it is ok.
	List(ctx context.Context, token string) (*dto.ListNotesResponse, *dto.CommandResult)
}

type NoteServiceDeps struct {
	UowFactory       unitofwork.RepositoryFactory
	Identity         identity.Provider
	MailService      INoteMailService
	PublisherService IPublisherService
	EventPublisher   EventPublisher
	ListCache        store.KVStore
	ListCacheTTL     time.Duration
	LoginPath        string
	Logger           logger.ILogger
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	callers          callerResolver
	mailService      INoteMailService
	publisherService IPublisherService
	eventPublisher   EventPublisher
	listCache        store.KVStore
	listCacheTTL     time.Duration
	logger           logger.ILogger
}

func NewNoteService(deps NoteServiceDeps) INoteService {
	return &noteService{
		uowFactory:       deps.UowFactory,
		callers:          callerResolver{identity: deps.Identity, loginPath: deps.LoginPath, logger: deps.Logger},
		mailService:      deps.MailService,
		publisherService: deps.PublisherService,
		eventPublisher:   deps.EventPublisher,
		listCache:        deps.ListCache,
		listCacheTTL:     deps.ListCacheTTL,
		logger:           deps.Logger,
	}
}

func notesListKey(userId uuid.UUID) string {
	return "notes:list:" + userId.String()
}

func (s *noteService) Create(ctx context.Context, token string, req *dto.CreateNoteRequest) *dto.CommandResult {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return res
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:        uuid.New(),
		UserId:    caller.Id,
		Title:     entity.NullableText(req.Title),
		Body:      entity.NullableText(req.Body),
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		s.logger.Error("NoteService", "failed to create note", map[string]interface{}{"error": err, "user_id": caller.Id})
		return dto.FailedResult(err.Error())
	}

	result := dto.OkResult()
	result.NoteId = &note.Id

	rows := recipients.Build(note.Id, req.To, req.Cc)
	persisted := false
	if len(rows) > 0 {
		for i := range rows {
			rows[i].Id = uuid.New()
		}
		// Best effort: the note stays even if its recipients cannot be saved.
		if err := uow.NoteRecipientRepository().CreateBatch(ctx, rows); err != nil {
			s.logger.Error("NoteService", "failed to save note recipients", map[string]interface{}{"error": err, "note_id": note.Id})
			result.Warn("recipients were not saved: " + err.Error())
		} else {
			persisted = true
		}
	}

	if persisted {
		s.notifyRecipients(ctx, &note, rows, result)
	}

	s.revalidate(ctx, caller.Id, events.NoteCreated, note.Id)
	return result
}

// notifyRecipients mails the note. Failures become warnings on result.
func (s *noteService) notifyRecipients(ctx context.Context, note *entity.Note, rows []entity.NoteRecipient, result *dto.CommandResult) {
	req := dto.NoteEmailRequest{
		Recipients: make([]dto.EmailRecipient, len(rows)),
		Title:      note.TitleOrDefault(),
		Body:       deref(note.Body),
	}
	for i, r := range rows {
		req.Recipients[i] = dto.EmailRecipient{Email: r.Email, Role: r.Role}
	}

	sent, err := s.mailService.Send(ctx, req)
	if err != nil {
		s.logger.Error("NoteService", "note email not sent", map[string]interface{}{"error": err, "note_id": note.Id})
		result.Warn("email not sent: " + err.Error())
		s.publishEvent(ctx, events.NoteEmailFailed, note.UserId, note.Id, map[string]interface{}{"reason": err.Error()})
		return
	}
	if !sent.Success {
		s.logger.Warn("NoteService", "note email failed", map[string]interface{}{"message": sent.Message, "note_id": note.Id})
		result.Warn("email not sent: " + sent.Message)
		s.publishEvent(ctx, events.NoteEmailFailed, note.UserId, note.Id, map[string]interface{}{"reason": sent.Message})
		return
	}
	s.publishEvent(ctx, events.NoteEmailed, note.UserId, note.Id, map[string]interface{}{"delivery_id": sent.DeliveryId})
}

func (s *noteService) Update(ctx context.Context, token string, req *dto.UpdateNoteRequest) *dto.CommandResult {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return res
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:     req.Id,
		UserId: caller.Id,
		Title:  entity.NullableText(req.Title),
		Body:   entity.NullableText(req.Body),
	}

	affected, err := uow.NoteRepository().UpdateOwned(ctx, &note)
	if err != nil {
		s.logger.Error("NoteService", "failed to update note", map[string]interface{}{"error": err, "note_id": req.Id})
		return dto.FailedResult(err.Error())
	}
	if affected == 0 {
		s.logger.Debug("NoteService", "update matched no rows", map[string]interface{}{"note_id": req.Id, "user_id": caller.Id})
		return dto.OkResult()
	}

	s.revalidate(ctx, caller.Id, events.NoteUpdated, req.Id)
	return dto.OkResult()
}

func (s *noteService) Delete(ctx context.Context, token string, id uuid.UUID) *dto.CommandResult {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return res
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.NoteRepository().DeleteOwned(ctx, id, caller.Id)
	if err != nil {
		s.logger.Error("NoteService", "failed to delete note", map[string]interface{}{"error": err, "note_id": id})
		return dto.FailedResult(err.Error())
	}
	if affected == 0 {
		s.logger.Debug("NoteService", "delete matched no rows", map[string]interface{}{"note_id": id, "user_id": caller.Id})
		return dto.OkResult()
	}

	s.revalidate(ctx, caller.Id, events.NoteDeleted, id)
	return dto.OkResult()
}

func (s *noteService) List(ctx context.Context, token string) (*dto.ListNotesResponse, *dto.CommandResult) {
	caller, res := s.callers.resolve(ctx, token)
	if res != nil {
		return nil, res
	}

	key := notesListKey(caller.Id)
	if cached, err := s.listCache.Get(ctx, key); err == nil {
		var resp dto.ListNotesResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, dto.OkResult()
		}
	} else if !errors.Is(err, store.ErrMiss) {
		s.logger.Warn("NoteService", "notes cache read failed", map[string]interface{}{"error": err.Error()})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: caller.Id},
		specification.WithRecipients{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.logger.Error("NoteService", "failed to list notes", map[string]interface{}{"error": err, "user_id": caller.Id})
		return nil, dto.FailedResult(err.Error())
	}

	resp := &dto.ListNotesResponse{Notes: make([]dto.NoteResponse, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, toNoteResponse(n))
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := s.listCache.Set(ctx, key, payload, s.listCacheTTL); err != nil {
			s.logger.Warn("NoteService", "notes cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, dto.OkResult()
}

func toNoteResponse(n *entity.Note) dto.NoteResponse {
	resp := dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Body:      n.Body,
		To:        make([]dto.RecipientResponse, 0),
		Cc:        make([]dto.RecipientResponse, 0),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	for _, r := range n.Recipients {
		rr := dto.RecipientResponse{Email: r.Email, Role: string(r.Role)}
		if r.Role == entity.RecipientRoleCc {
			resp.Cc = append(resp.Cc, rr)
		} else {
			resp.To = append(resp.To, rr)
		}
	}
	return resp
}

// revalidate drops the caller's cached list, then tells the rest of the
// system. Nothing here can fail the command.
func (s *noteService) revalidate(ctx context.Context, userId uuid.UUID, eventType string, noteId uuid.UUID) {
	if err := s.listCache.Delete(ctx, notesListKey(userId)); err != nil {
		s.logger.Warn("NoteService", "notes cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}

	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.PublishRevalidateMessage{UserId: userId, Reason: eventType})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("NoteService", "revalidate publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	s.publishEvent(ctx, eventType, userId, noteId, nil)
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, userId, noteId uuid.UUID, extra map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	data := map[string]interface{}{
		"note_id": noteId,
		"user_id": userId,
	}
	for k, v := range extra {
		data[k] = v
	}
	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("NoteService", "failed to publish event", map[string]interface{}{"error": err.Error(), "type": eventType})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
