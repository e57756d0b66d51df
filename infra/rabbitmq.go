package infra

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/davitran/clipshare/config"
)

type RabbitMQClient struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
}

// NewRabbitMQClient connects to the broker. Event publishing is best-effort,
// so callers treat the broker as optional.
func NewRabbitMQClient(cfg *config.EnvConfig) (*RabbitMQClient, error) {
	if cfg.RabbitMQ.Host == "" {
		return nil, fmt.Errorf("rabbitmq host is not configured")
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQ.Username,
		cfg.RabbitMQ.Password,
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection failed: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel failed: %w", err)
	}

	return &RabbitMQClient{Conn: conn, Channel: channel}, nil
}

func (r *RabbitMQClient) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}
