package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-api/models"
)

const RoutingKeyOrderCreated = "order.created"

// confirms left behind by abandoned waits queue here until the next publish skips them
const confirmBuffer = 16

var (
	ErrNack          = errors.New("publish NACK from broker")
	ErrConfirmClosed = errors.New("confirm channel closed")
)

// OrderCreated is the message body published after an order is stored
type OrderCreated struct {
	OrderID      uint             `json:"orderId"`
	Type         models.OrderType `json:"type"`
	Waiter       string           `json:"waiter"`
	PeopleQty    int              `json:"peopleQty"`
	TotalPayment float64          `json:"totalPayment"`
	Paid         bool             `json:"paid"`
	MenuIDs      []uint           `json:"menuIds"`
	TableIDs     []uint           `json:"tableIds,omitempty"`
	CustomerID   *uint            `json:"customerId,omitempty"`
	Date         time.Time        `json:"date"`
}

// NewOrderCreated builds the event for a persisted order
func NewOrderCreated(o *models.Order) OrderCreated {
	ev := OrderCreated{
		OrderID:      o.ID,
		Type:         o.Type,
		Waiter:       o.Waiter,
		PeopleQty:    o.PeopleQty,
		TotalPayment: o.TotalPayment,
		Paid:         o.Paid,
		MenuIDs:      make([]uint, 0, len(o.Menus)),
		CustomerID:   o.CustomerID,
		Date:         o.Date,
	}
	for _, m := range o.Menus {
		ev.MenuIDs = append(ev.MenuIDs, m.ID)
	}
	for _, t := range o.Tables {
		ev.TableIDs = append(ev.TableIDs, t.ID)
	}
	return ev
}

type Publisher interface {
	PublishOrderCreated(ctx context.Context, ev OrderCreated) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, OrderCreated) error { return nil }
func (NopPublisher) Close() error                                            { return nil }

// RabbitPublisher publishes JSON events to a topic exchange with publisher confirms
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	acks <-chan amqp.Confirmation
	mu   sync.Mutex // one in-flight publish per confirm
}

func DialRabbit(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, acks: acks}, nil
}

func (p *RabbitPublisher) PublishOrderCreated(ctx context.Context, ev OrderCreated) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	tag := p.ch.GetNextPublishSeqNo()
	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyOrderCreated, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Headers:      amqp.Table{"order_type": string(ev.Type)},
		Body:         body,
	})
	if err != nil {
		return err
	}

	return awaitConfirm(ctx, p.acks, tag)
}

// awaitConfirm waits for the broker's answer to delivery tag. Confirms for
// earlier tags belong to publishes whose caller gave up and are dropped.
func awaitConfirm(ctx context.Context, acks <-chan amqp.Confirmation, tag uint64) error {
	for {
		select {
		case conf, ok := <-acks:
			if !ok {
				return ErrConfirmClosed
			}
			if conf.DeliveryTag < tag {
				continue
			}
			if conf.DeliveryTag > tag {
				return fmt.Errorf("confirm for delivery %d while waiting for %d", conf.DeliveryTag, tag)
			}
			if !conf.Ack {
				return ErrNack
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *RabbitPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}
