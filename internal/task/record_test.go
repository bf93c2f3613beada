package task

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/burnerlist/internal/testutil"
)

func TestNewRecord(t *testing.T) {
	gen := testutil.NewSequentialIDs()

	rec := NewRecord(gen, Secondary, "buy milk\n")

	assert.Equal(t, testutil.ID(1), rec.ID)
	assert.Equal(t, Secondary, rec.Rank)
	assert.Equal(t, "buy milk", rec.Value)
}

func TestRecord_EqualIsIdentity(t *testing.T) {
	id := uuid.New()
	a := Record{ID: id, Rank: Primary, Value: "a"}
	b := Record{ID: id, Rank: Other, Value: "b"}
	c := Record{ID: uuid.New(), Rank: Primary, Value: "a"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRandomIDs_Unique(t *testing.T) {
	gen := RandomIDs{}
	a, b := gen.NewID(), gen.NewID()

	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.Version())
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"trailing newline", "hello\r\n", "hello"},
		{"trailing spaces", "hello  \t", "hello"},
		{"leading kept", "  hello", "  hello"},
		{"interior newline kept", "a\nb", "a\nb"},
		{"nfc composes", "e\u0301", "\u00e9"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.in))
		})
	}
}

func TestEventKinds(t *testing.T) {
	id := uuid.New()
	events := map[EventKind]Event{
		KindAdd:    Add{Rank: Primary, Value: "x"},
		KindEdit:   Edit{ID: id, Value: "y"},
		KindMove:   Move{ID: id, Rank: Other, Index: At(2)},
		KindDelete: Delete{ID: id},
	}
	for kind, ev := range events {
		assert.Equal(t, kind, ev.Kind())
	}
}
