package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes through a shared kafka-go writer. The topic is
// set per message so one writer serves every outbox topic.
type WriterProducer struct {
	writer *kafka.Writer
	log    *zap.Logger
}

func NewWriterProducer(brokers []string, log *zap.Logger) *WriterProducer {
	if log == nil {
		log = zap.NewNop()
	}
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 100 * time.Millisecond,
		},
		log: log,
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *WriterProducer) Close() error {
	p.log.Info("closing kafka producer")
	return p.writer.Close()
}

// ConsoleProducer prints messages instead of publishing them. Used in local
// development when no broker is reachable.
type ConsoleProducer struct {
	log *zap.Logger
}

func NewConsoleProducer(log *zap.Logger) *ConsoleProducer {
	if log == nil {
		log = zap.NewNop()
	}
	return &ConsoleProducer{log: log}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.log.Info("kafka message (console)",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value))
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
