package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/OblivionLi/salaries-management-system/internal/models"

	"github.com/go-redis/redis/v8"
)

// Subscriber is the subset of the redis client used to consume change events.
type Subscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Consumer listens on the salary topic and logs every change event. Bad
// payloads are logged and skipped; the loop only stops when ctx is done.
type Consumer struct {
	sub   Subscriber
	topic string
}

func NewConsumer(sub Subscriber, topic string) *Consumer {
	return &Consumer{sub: sub, topic: topic}
}

// Run blocks consuming messages until ctx is cancelled. Intended to be
// started as a goroutine from main.
func (c *Consumer) Run(ctx context.Context) {
	pubsub := c.sub.Subscribe(ctx, c.topic)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			c.handle(msg.Payload)
		}
	}
}

func (c *Consumer) handle(payload string) {
	var salary models.Salary
	if err := json.Unmarshal([]byte(payload), &salary); err != nil {
		log.Printf("notifier: deserialize salary message: %v", err)
		return
	}
	log.Printf("notifier: received salary message: id=%d employee=%s", salary.ID, salary.Employee)
}
