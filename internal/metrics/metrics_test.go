package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersRegisteredAndCounting(t *testing.T) {
	before := testutil.ToFloat64(LikesToggled.WithLabelValues("like"))
	LikesToggled.WithLabelValues("like").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(LikesToggled.WithLabelValues("like")))

	before = testutil.ToFloat64(SharesTransitions.WithLabelValues("accepted"))
	SharesTransitions.WithLabelValues("accepted").Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(SharesTransitions.WithLabelValues("accepted")))

	FeedbackCreated.WithLabelValues("recording", "false").Inc()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(FeedbackCreated), 1)
}
