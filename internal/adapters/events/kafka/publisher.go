// Package kafka は預入イベントを Kafka トピックへ送信します。
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ogurasousui/benefit-ledger/internal/core/deposit"
	"github.com/segmentio/kafka-go"
)

const eventHeader = "event"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	io.Closer
}

// Publisher は deposit.EventPublisher の Kafka 実装です。
// メッセージのキーは社員 ID で、同一社員のイベントは同じパーティションに並びます。
type Publisher struct {
	writer messageWriter
}

// NewPublisher は brokers の topic へ書き込む Publisher を生成します。
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish はイベントを JSON として送信します。
func (p *Publisher) Publish(ctx context.Context, event deposit.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Name(), err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.Key()),
		Value:   data,
		Headers: []kafka.Header{{Key: eventHeader, Value: []byte(event.Name())}},
	}); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Name(), err)
	}

	return nil
}

// Close は送信待ちのメッセージを書き出してから接続を閉じます。
func (p *Publisher) Close() error {
	return p.writer.Close()
}
