package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FeedbackCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodia_feedback_created_total",
			Help: "Feedback created, split by resource type and reply flag",
		},
		[]string{"resource_type", "reply"},
	)

	FeedbackDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "melodia_feedback_deleted_total",
			Help: "Feedback rows removed, replies included",
		},
	)

	LikesToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodia_likes_toggled_total",
			Help: "Like toggles by outcome (like, unlike, in_flight)",
		},
		[]string{"outcome"},
	)

	SharesTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodia_share_transitions_total",
			Help: "Share lifecycle transitions (created, accepted, deleted)",
		},
		[]string{"transition"},
	)

	EventsPublishFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodia_events_publish_failed_total",
			Help: "Domain events that could not be written to Kafka",
		},
		[]string{"type"},
	)

	NotificationsStored = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "melodia_notifications_stored_total",
			Help: "Notifications stored by the notifier, by event type",
		},
		[]string{"type"},
	)

	FeedbackIndexed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "melodia_feedback_indexed_total",
			Help: "Feedback documents loaded into the search index",
		},
	)
)

func init() {
	prometheus.MustRegister(
		FeedbackCreated,
		FeedbackDeleted,
		LikesToggled,
		SharesTransitions,
		EventsPublishFailed,
		NotificationsStored,
		FeedbackIndexed,
	)
}
