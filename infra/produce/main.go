package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	MediaEvents *MediaEventService
}

func InitProduce(channel *amqp.Channel) (*Produce, error) {
	mediaEvents, err := InitMediaEventService(channel)
	if err != nil {
		return nil, err
	}

	return &Produce{
		MediaEvents: mediaEvents,
	}, nil
}
