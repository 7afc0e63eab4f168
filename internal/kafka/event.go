package kafka

import "time"

type EventType string

const (
	FeedbackAdded   EventType = "feedback_added"
	FeedbackReplied EventType = "feedback_replied"
	ShareCreated    EventType = "share_created"
	ShareAccepted   EventType = "share_accepted"
	ShareRevoked    EventType = "share_revoked"
)

// Event - доменное событие, из которого notifier строит уведомления.
// Получатель задается либо RecipientID, либо RecipientEmail (для приглашений
// пользователям, которые еще не зарегистрированы)
type Event struct {
	Type           EventType `json:"type"`
	ActorID        string    `json:"actor_id"`
	RecipientID    string    `json:"recipient_id,omitempty"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	ResourceID     string    `json:"resource_id"`
	ResourceType   string    `json:"resource_type"`
	SubjectID      string    `json:"subject_id,omitempty"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Key groups events of one resource on one partition.
func (e Event) Key() []byte {
	return []byte(e.ResourceType + ":" + e.ResourceID)
}
