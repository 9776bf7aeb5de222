package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader  *kafka.Reader
	topic   string
	groupID string
	handler MessageHandler
	closed  bool
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

func NewConsumer(brokers []string, topic string, groupID string, handler MessageHandler) (*Consumer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}

	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        500 * time.Millisecond,
		CommitInterval: 0, // Commit synchronously after handling
		StartOffset:    kafka.FirstOffset,
		Logger:         kafka.LoggerFunc(func(msg string, args ...any) {}), // Silence default logger
		ErrorLogger:    kafka.LoggerFunc(log.Printf),
	})

	return &Consumer{
		reader:  reader,
		topic:   topic,
		groupID: groupID,
		handler: handler,
	}, nil
}

// Start begins consuming messages. It blocks until ctx is cancelled or
// the consumer is closed.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrConsumerClosed
	}
	c.mu.RUnlock()

	c.wg.Add(1)
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			kafkaMsg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
					return nil
				}
				return fmt.Errorf("fetch message: %w", err)
			}

			msg := Message{
				Key:       string(kafkaMsg.Key),
				Value:     kafkaMsg.Value,
				Headers:   make(map[string]string, len(kafkaMsg.Headers)),
				Topic:     kafkaMsg.Topic,
				Partition: kafkaMsg.Partition,
				Offset:    kafkaMsg.Offset,
				Timestamp: kafkaMsg.Time,
			}
			for _, h := range kafkaMsg.Headers {
				msg.Headers[h.Key] = string(h.Value)
			}

			// A failed handler still commits: the projection is
			// best-effort and a poison message must not wedge the
			// partition.
			if err := c.handler(ctx, msg); err != nil {
				log.Printf("message handler failed: topic=%s partition=%d offset=%d error=%v",
					msg.Topic, msg.Partition, msg.Offset, err)
			}

			if err := c.reader.CommitMessages(ctx, kafkaMsg); err != nil {
				return fmt.Errorf("commit message: %w", err)
			}
		}
	}
}

// Close closes the consumer and waits for in-flight handling to finish
func (c *Consumer) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	err := c.reader.Close()
	c.wg.Wait()
	return err
}
