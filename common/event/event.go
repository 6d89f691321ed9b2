package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/common/logger"
)

// Broker publishes resize events to subscribers. Subscribers of command
// topics must accept a single apitype.Command argument; they are called
// asynchronously from the bus' own goroutines.
type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// InitDevNullBus returns a broker that drops everything sent to it.
func InitDevNullBus() *Broker {
	return &Broker{}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) error {
	if s.bus == nil {
		return nil
	}
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Printf("Could not subscribe to '%s': %s", topic, err)
		return err
	}
	return nil
}

func (s *Broker) SendToTopic(topic api.Topic) {
	if s.bus == nil {
		return
	}
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	if s.bus == nil {
		return
	}
	logger.Trace.Printf("Sending command %s to '%s'", command.RequestId(), topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close(topic api.Topic) {
	if s.bus != nil {
		s.bus.Close(string(topic))
	}
}
