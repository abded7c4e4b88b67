package notifier

import (
	"context"
	"encoding/json"
	"log"

	"github.com/OblivionLi/salaries-management-system/internal/models"

	"github.com/go-redis/redis/v8"
)

// Publisher is the subset of the redis client used to publish change events.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Producer publishes a serialized copy of a saved salary record on a fixed
// topic. It is fire-and-forget: serialization and transport failures are
// logged and swallowed, never surfaced to the caller.
type Producer struct {
	pub   Publisher
	topic string
}

func NewProducer(pub Publisher, topic string) *Producer {
	return &Producer{pub: pub, topic: topic}
}

// Notify publishes the record. The salary date is cleared on the published
// copy only: the downstream consumer cannot parse our date format. The
// persisted record is left untouched.
func (p *Producer) Notify(ctx context.Context, salary *models.Salary) {
	payload := *salary
	payload.SalaryDate = nil

	data, err := json.Marshal(&payload)
	if err != nil {
		log.Printf("notifier: serialize salary %d: %v", salary.ID, err)
		return
	}
	if err := p.pub.Publish(ctx, p.topic, data).Err(); err != nil {
		log.Printf("notifier: publish salary %d: %v", salary.ID, err)
		return
	}
	log.Printf("notifier: sent salary message: %s", data)
}
