package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	dbm "wanderwise/internal/models/db_models"
	"wanderwise/pkg/mq"
)

const (
	EventTripCreated = "trip.created"
	EventTripUpdated = "trip.updated"
	EventTripShared  = "trip.shared"
	EventTripDeleted = "trip.deleted"
)

type TripEvent struct {
	Type       string `json:"type"`
	TripID     string `json:"trip_id"`
	OwnerID    string `json:"owner_id"`
	ActorID    string `json:"actor_id,omitempty"`
	Name       string `json:"name"`
	Privacy    string `json:"privacy"`
	ShareToken string `json:"share_token,omitempty"`
	At         int64  `json:"at"`
}

// EventEmitter publishes trip events without failing the caller.
type EventEmitter struct {
	pub mq.Publisher
	log *zap.Logger
}

func NewEventEmitter(pub mq.Publisher, log *zap.Logger) *EventEmitter {
	return &EventEmitter{pub: pub, log: log.Named("events")}
}

func (e *EventEmitter) Trip(ctx context.Context, kind string, t *dbm.Trip, actorID string) {
	if e == nil || e.pub == nil {
		return
	}
	ev := TripEvent{
		Type:    kind,
		TripID:  t.ID.String(),
		OwnerID: t.OwnerID.String(),
		ActorID: actorID,
		Name:    t.Name,
		Privacy: string(t.Privacy),
		At:      time.Now().Unix(),
	}
	if t.ShareToken != nil {
		ev.ShareToken = *t.ShareToken
	}

	// the request may finish before the broker answers
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := e.pub.PublishJSON(pctx, kind, ev); err != nil {
		e.log.Warn("publish failed", zap.String("routing_key", kind), zap.String("trip_id", ev.TripID), zap.Error(err))
	}
}
