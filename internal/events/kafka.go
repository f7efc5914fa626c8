package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/taxboard/invoice-request-service/internal/config"
	"github.com/taxboard/invoice-request-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher публикует события о созданных запросах счетов
// для бэк-офиса. Ключ сообщения — номер заказа, чтобы события по
// одному заказу попадали в одну партицию.
type KafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaPublisher) PublishInvoiceRequested(ctx context.Context, evt entities.InvoiceRequestedEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.OrderNo),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}

	p.logger.Debug("invoice requested event published", slog.String("req_no", evt.ReqNo))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
