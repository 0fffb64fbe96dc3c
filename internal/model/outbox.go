package model

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType names a case transition that someone must hear about.
type EventType string

const (
	EventDraftReady                EventType = "case.draft_ready"
	EventReadyForCM                EventType = "case.ready_for_cm"
	EventCaseSealed                EventType = "case.sealed"
	EventCaseUnlocked              EventType = "case.unlocked"
	EventCaseReopened              EventType = "case.reopened"
	EventPreQuestionnairesComplete EventType = "prequestionnaires.completed"
	EventLawyerSelected            EventType = "lawyer.selected"
	EventLawyerIntroduction        EventType = "lawyer.introduction"
	EventLawyerStageOpened         EventType = "lawyer_stage.opened"
	EventCaseManagerAssigned       EventType = "case_manager.assigned"
	EventPartnerInvited            EventType = "partner.invited"
	EventPartnerJoined             EventType = "partner.joined"
)

// OutboxStatus is the delivery state of an outbox row.
type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "pending"
	OutboxDelivered OutboxStatus = "delivered"
	OutboxDead      OutboxStatus = "dead"
)

// CaseEvent is the payload stored with every outbox row.
type CaseEvent struct {
	CaseID    uuid.UUID `json:"case_id"`
	CaseTitle string    `json:"case_title"`
	ActorID   uuid.UUID `json:"actor_id"`
	// Parties holds the owner first, then the invited user when attached.
	Parties   []uuid.UUID `json:"parties"`
	LawyerID  *uuid.UUID  `json:"lawyer_id,omitempty"`
	ManagerID *uuid.UUID  `json:"manager_id,omitempty"`
	Email     string      `json:"email,omitempty"`
	Token     string      `json:"token,omitempty"`
	Message   string      `json:"message,omitempty"`
	URL       string      `json:"url,omitempty"`
	// Snapshot is set for case.sealed only.
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

// OutboxEvent is a pending side effect committed with a case mutation.
type OutboxEvent struct {
	ID            uuid.UUID
	CaseID        uuid.UUID
	Type          EventType
	Payload       json.RawMessage
	Status        OutboxStatus
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}

// NewOutboxEvent encodes payload into a pending event of type t.
func NewOutboxEvent(t EventType, payload CaseEvent, now time.Time) (OutboxEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("failed to encode %s event: %w", t, err)
	}

	return OutboxEvent{
		ID:            uuid.New(),
		CaseID:        payload.CaseID,
		Type:          t,
		Payload:       raw,
		Status:        OutboxPending,
		NextAttemptAt: now,
		CreatedAt:     now,
	}, nil
}

// DecodePayload decodes the stored event payload.
func (e OutboxEvent) DecodePayload() (CaseEvent, error) {
	var p CaseEvent
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return CaseEvent{}, fmt.Errorf("failed to decode %s event: %w", e.Type, err)
	}
	return p, nil
}

// OutboxStore leases and settles outbox rows for the relay.
type OutboxStore interface {
	Lease(ctx context.Context, now time.Time, limit int, leaseTTL time.Duration) ([]OutboxEvent, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkRetry(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time, lastError string) error
	MarkDead(ctx context.Context, id uuid.UUID, lastError string) error
}
