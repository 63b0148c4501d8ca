package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/chat-bet-parser-service/internal/models"
	"github.com/cypherlabdev/chat-bet-parser-service/internal/service"
	"github.com/cypherlabdev/chat-bet-parser-service/pkg/chatbet"
)

// KafkaConsumer consumes chat messages from Kafka and parses them
type KafkaConsumer struct {
	reader *kafka.Reader
	parser service.Parser
	cache  service.Cache
	logger zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "chat_messages"
	GroupID string   // e.g., "chat-bet-parser"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	parser service.Parser,
	cache service.Cache,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader: reader,
		parser: parser,
		cache:  cache,
		logger: logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			// Read message
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			// Process message
			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			// Commit message
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage processes a single Kafka message. A chat line that fails
// to parse is logged with its error kind and skipped; bad shorthand from
// one bettor must not stall the partition.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var kafkaMsg models.KafkaChatMessageBatch
	if err := json.Unmarshal(msg.Value, &kafkaMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Int("message_count", len(kafkaMsg.Messages)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("processing chat message batch")

	results := make([]*models.ParseResult, 0, len(kafkaMsg.Messages))
	texts := make([]string, 0, len(kafkaMsg.Messages))
	parsed, rejected := 0, 0

	for _, chat := range kafkaMsg.Messages {
		opts := chatbet.Options{ReferenceDate: chat.ReceivedAt}
		result, err := c.parser.Parse(chat.Text, opts)
		if err != nil {
			rejected++
			var perr *chatbet.Error
			evt := c.logger.Warn().Err(err).Str("message_id", chat.ID)
			if errors.As(err, &perr) {
				evt = evt.Str("error_kind", string(perr.Kind)).Str("token", perr.Token)
			}
			evt.Msg("rejected chat message")
			continue
		}
		parsed++
		results = append(results, result)
		texts = append(texts, chat.Text)
	}

	if err := c.cache.SetBatch(ctx, texts, results); err != nil {
		return fmt.Errorf("failed to cache parse results: %w", err)
	}

	c.logger.Info().
		Int("parsed", parsed).
		Int("rejected", rejected).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("processed chat message batch")

	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
