// Package queue defines message payloads exchanged over the message broker.
package queue

// PlanSavedEvent is published when an editor saves/shares a bus plan.  It
// carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type PlanSavedEvent struct {
	PlanID     uint64 `json:"plan_id"`
	OwnerID    uint64 `json:"owner_id"`
	Name       string `json:"name"`
	ShareToken string `json:"share_token"`
	Seats      int    `json:"seats"`
	People     int    `json:"people"`
	Assigned   int    `json:"assigned"`
	SavedAt    string `json:"saved_at"`
}
