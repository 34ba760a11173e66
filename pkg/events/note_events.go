package events

const (
	NoteCreated     = "NOTE_CREATED"
	NoteUpdated     = "NOTE_UPDATED"
	NoteDeleted     = "NOTE_DELETED"
	NoteEmailed     = "NOTE_EMAILED"
	NoteEmailFailed = "NOTE_EMAIL_FAILED"
	UserRegistered  = "USER_REGISTERED"
	PasswordChanged = "USER_PASSWORD_CHANGED"
)
