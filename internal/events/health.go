package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// BrokerCheck reports whether at least one Kafka broker accepts connections.
type BrokerCheck struct {
	brokers []string
	dialer  *kafka.Dialer
}

// NewBrokerCheck creates a BrokerCheck for the given brokers.
func NewBrokerCheck(brokers []string) *BrokerCheck {
	return &BrokerCheck{brokers: brokers, dialer: &kafka.Dialer{}}
}

// Ping dials the brokers in order and succeeds on the first connection.
func (b *BrokerCheck) Ping(ctx context.Context) error {
	if len(b.brokers) == 0 {
		return errors.New("no brokers configured")
	}
	var errs []error
	for _, broker := range b.brokers {
		conn, err := b.dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			errs = append(errs, fmt.Errorf("dial %s: %w", broker, err))
			continue
		}
		return conn.Close()
	}
	return errors.Join(errs...)
}
