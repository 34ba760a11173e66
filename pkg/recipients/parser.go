package recipients

import (
	"strings"

	"vibe-notes-be/internal/entity"

	"github.com/google/uuid"
)

// Parse splits a comma separated address list into trimmed, lower-cased
// addresses. Empty segments are dropped; order is preserved and duplicates
// are kept. Address syntax is not checked.
func Parse(raw string) []string {
	addresses := make([]string, 0)
	if strings.TrimSpace(raw) == "" {
		return addresses
	}

	for _, segment := range strings.Split(raw, ",") {
		addr := strings.ToLower(strings.TrimSpace(segment))
		if addr == "" {
			continue
		}
		addresses = append(addresses, addr)
	}
	return addresses
}

// Build returns the recipient rows for a note, "to" addresses first.
// Position records each row's place in that order.
func Build(noteId uuid.UUID, toRaw, ccRaw string) []entity.NoteRecipient {
	rows := make([]entity.NoteRecipient, 0)
	for _, email := range Parse(toRaw) {
		rows = append(rows, entity.NoteRecipient{NoteId: noteId, Email: email, Role: entity.RecipientRoleTo, Position: len(rows)})
	}
	for _, email := range Parse(ccRaw) {
		rows = append(rows, entity.NoteRecipient{NoteId: noteId, Email: email, Role: entity.RecipientRoleCc, Position: len(rows)})
	}
	return rows
}
