package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	p := &Publisher{writer: writer}

	d := &deposit.Deposit{
		ID:         "deposit-1",
		EmployeeID: "employee-1",
		Amount:     decimal.RequireFromString("12.50"),
		Type:       deposit.TypeGift,
		Date:       time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), deposit.NewRecordedEvent(d, "company-1")))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "employee-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, eventHeader, msg.Headers[0].Key)
	assert.Equal(t, deposit.EventRecorded, string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "deposit-1", body["deposit_id"])
	assert.Equal(t, "company-1", body["company_id"])
	assert.Equal(t, "12.5", body["amount"])
	assert.Equal(t, "GIFT", body["deposit_type"])
	assert.Equal(t, "2024-06-15", body["deposit_date"])
}

func TestPublisher_PublishError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	p := &Publisher{writer: writer}

	event := deposit.NewLapsedEvent(&deposit.Deposit{ID: "deposit-1", Type: deposit.TypeMeal}, time.Now())
	err := p.Publish(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), deposit.EventLapsed)
}

func TestPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	p := &Publisher{writer: writer}

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}
