package task

import (
	"github.com/google/uuid"
)

// EventKind names one of the four input events.
type EventKind string

const (
	KindAdd    EventKind = "add"
	KindEdit   EventKind = "edit"
	KindMove   EventKind = "move"
	KindDelete EventKind = "delete"
)

// Event is one input to the mutation engine. The set of implementations is
// closed: Add, Edit, Move and Delete.
type Event interface {
	Kind() EventKind
	isEvent()
}

// Add creates a task at the tail of Rank.
type Add struct {
	Rank  Rank
	Value string
}

// Edit replaces the value of task ID, keeping its rank and position.
type Edit struct {
	ID    uuid.UUID
	Value string
}

// Move places task ID into Rank. When Index is nil the task goes to the
// tail. Otherwise Index is clamped to [0, len] of the target rank, counted
// after the task has left its previous position.
type Move struct {
	ID    uuid.UUID
	Rank  Rank
	Index *int
}

// Delete removes task ID.
type Delete struct {
	ID uuid.UUID
}

func (Add) Kind() EventKind    { return KindAdd }
func (Edit) Kind() EventKind   { return KindEdit }
func (Move) Kind() EventKind   { return KindMove }
func (Delete) Kind() EventKind { return KindDelete }

func (Add) isEvent()    {}
func (Edit) isEvent()   {}
func (Move) isEvent()   {}
func (Delete) isEvent() {}

// At returns a pointer to i, for use as Move.Index.
func At(i int) *int {
	return &i
}
