package produce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	MediaExchange          = "media.exchange"
	AssetCreatedQueue      = "media.asset_created"
	AssetCreatedRoutingKey = "media.asset_created"
)

// AssetCreatedMessage announces a committed asset record to downstream
// consumers (notification fan-out, analytics).
type AssetCreatedMessage struct {
	VideoID        string  `json:"video_id"`
	PublicID       string  `json:"public_id"`
	Title          string  `json:"title"`
	OriginalSize   int64   `json:"original_size"`
	CompressedSize int64   `json:"compressed_size"`
	Duration       float64 `json:"duration"`
	Timestamp      int64   `json:"timestamp"`
}

// MediaEventService publishes asset lifecycle events.
type MediaEventService struct {
	channel *amqp.Channel
}

func InitMediaEventService(channel *amqp.Channel) (*MediaEventService, error) {
	err := channel.ExchangeDeclare(
		MediaExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare media exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		AssetCreatedQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare asset created queue: %w", err)
	}

	err = channel.QueueBind(
		AssetCreatedQueue,
		AssetCreatedRoutingKey,
		MediaExchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bind asset created queue: %w", err)
	}

	return &MediaEventService{channel: channel}, nil
}

// PublishAssetCreated publishes an asset.created event.
func (s *MediaEventService) PublishAssetCreated(ctx context.Context, msg AssetCreatedMessage) error {
	msg.Timestamp = time.Now().Unix()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal asset created message: %w", err)
	}

	return s.channel.PublishWithContext(
		ctx,
		MediaExchange,
		AssetCreatedRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
