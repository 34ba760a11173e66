package recipients

import (
	"testing"

	"vibe-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "whitespace only", raw: "   ", want: []string{}},
		{name: "only separators", raw: " , ,, ", want: []string{}},
		{name: "single", raw: "a@b.com", want: []string{"a@b.com"}},
		{
			name: "trims, folds case and drops empties",
			raw:  " A@X.com, b@y.com ,, C@z.COM",
			want: []string{"a@x.com", "b@y.com", "c@z.com"},
		},
		{name: "keeps duplicates", raw: "a@b.com,A@B.COM", want: []string{"a@b.com", "a@b.com"}},
		{name: "no syntax check", raw: "not-an-address", want: []string{"not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild(t *testing.T) {
	noteId := uuid.New()

	rows := Build(noteId, "To@x.com, ", " cc1@y.com,cc2@y.com")

	assert.Len(t, rows, 3)
	assert.Equal(t, entity.NoteRecipient{NoteId: noteId, Email: "to@x.com", Role: entity.RecipientRoleTo}, rows[0])
	assert.Equal(t, entity.RecipientRoleCc, rows[1].Role)
	assert.Equal(t, "cc2@y.com", rows[2].Email)
	for i, r := range rows {
		assert.Equal(t, noteId, r.NoteId)
		assert.NotEmpty(t, r.Email)
		assert.Equal(t, i, r.Position)
	}
}

func TestBuild_NoRecipients(t *testing.T) {
	assert.Empty(t, Build(uuid.New(), "", "  "))
}
