package notifier

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"engine/internal/entities"
	"engine/pkg/logger"
)

// Notifier публикует события "статус отправки изменился" в Kafka. Вызывается
// строго после коммита транзакции, fire-and-forget: ошибка публикации не
// откатывает переход, только логируется и попадает в метрику.
type Notifier struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func New(log logger.Logger, producer sarama.SyncProducer, topic string) *Notifier {
	return &Notifier{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

type statusChangedMessage struct {
	ShipmentID int64     `json:"shipment_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ActorType  string    `json:"actor_type"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (n *Notifier) ShipmentStatusChanged(shipmentID int64, oldStatus, newStatus entities.ShipmentStatusType, actor entities.Actor) {
	message := statusChangedMessage{
		ShipmentID: shipmentID,
		OldStatus:  oldStatus.String(),
		NewStatus:  newStatus.String(),
		ActorType:  actor.Type.String(),
		ActorID:    actor.ID,
		OccurredAt: time.Now().UTC(),
	}

	go n.publish(message)
}

func (n *Notifier) publish(message statusChangedMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		n.log.Error("failed to marshal status-changed message",
			logger.NewField("shipment_id", message.ShipmentID),
			logger.NewField("error", err),
		)
		NotifierMessagesTotal.WithLabelValues("marshal_error").Inc()
		return
	}

	start := time.Now()
	// ключ — id отправки, чтобы события одной отправки шли в одну партицию
	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(message.ShipmentID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	NotifierPublishDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		n.log.Error("failed to publish status-changed message",
			logger.NewField("shipment_id", message.ShipmentID),
			logger.NewField("new_status", message.NewStatus),
			logger.NewField("error", err),
		)
		NotifierMessagesTotal.WithLabelValues("error").Inc()
		return
	}

	n.log.Debug("status-changed message published",
		logger.NewField("shipment_id", message.ShipmentID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	NotifierMessagesTotal.WithLabelValues("ok").Inc()
}
