package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record holds the identity metadata shared by persisted entities.
// Both values are fixed when the record is created.
type Record struct {
	id        uuid.UUID
	createdAt time.Time
}

// NewRecord generates a fresh time-ordered identifier stamped with now.
func NewRecord(now time.Time) (Record, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("failed to generate uuid: %w", err)
	}
	return Record{id: id, createdAt: now}, nil
}

// RestoreRecord rebuilds a record loaded from storage.
func RestoreRecord(id uuid.UUID, createdAt time.Time) Record {
	return Record{id: id, createdAt: createdAt}
}

func (r Record) ID() uuid.UUID {
	return r.id
}

func (r Record) CreatedAt() time.Time {
	return r.createdAt
}

type TaskParams struct {
	Title       string
	Description string
	DueAt       time.Time
	UserID      uuid.UUID
}

type Task struct {
	Record

	Title       string
	Description string
	DueAt       time.Time

	userID    uuid.UUID
	completed bool
}

// NewTask creates an incomplete task owned by params.UserID. The due date
// is taken as is; bounds are enforced where requests are validated.
func NewTask(params TaskParams, now time.Time) (*Task, error) {
	record, err := NewRecord(now)
	if err != nil {
		return nil, err
	}

	return &Task{
		Record:      record,
		Title:       params.Title,
		Description: params.Description,
		DueAt:       params.DueAt,
		userID:      params.UserID,
	}, nil
}

func RestoreTask(record Record, params TaskParams, completed bool) *Task {
	return &Task{
		Record:      record,
		Title:       params.Title,
		Description: params.Description,
		DueAt:       params.DueAt,
		userID:      params.UserID,
		completed:   completed,
	}
}

func (t *Task) UserID() uuid.UUID {
	return t.userID
}

func (t *Task) IsCompleted() bool {
	return t.completed
}

// MarkAsComplete is the only state transition of a task. There is no way back.
func (t *Task) MarkAsComplete() {
	t.completed = true
}
