package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dashboard-srv/internal/dashboard"
	kafkaDelivery "dashboard-srv/internal/dashboard/delivery/kafka"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKafka struct {
	key, value []byte
	err        error
}

func (f *fakeKafka) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}
func (f *fakeKafka) Close() error       { return nil }
func (f *fakeKafka) HealthCheck() error { return nil }

func TestPublishFetchSettled(t *testing.T) {
	fk := &fakeKafka{}
	p := New(log.NewNopLogger(), fk)

	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	err := p.PublishFetchSettled(context.Background(), dashboard.FetchSettled{
		SessionID: "sess-1",
		Operation: model.OperationExplore,
		Token:     4,
		Outcome:   model.FetchDiscarded,
		Duration:  1500 * time.Millisecond,
		SettledAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "sess-1", string(fk.key))
	var msg kafkaDelivery.FetchSettledMessage
	require.NoError(t, json.Unmarshal(fk.value, &msg))
	assert.Equal(t, "explore", msg.Operation)
	assert.Equal(t, "discarded", msg.Outcome)
	assert.EqualValues(t, 4, msg.Token)
	assert.EqualValues(t, 1500, msg.DurationMs)
	assert.True(t, at.Equal(msg.SettledAt))
}

func TestPublishFetchSettledError(t *testing.T) {
	fk := &fakeKafka{err: errors.New("broker down")}
	p := New(log.NewNopLogger(), fk)

	err := p.PublishFetchSettled(context.Background(), dashboard.FetchSettled{SessionID: "s"})
	assert.ErrorContains(t, err, "broker down")
}
