package api

import "vincit.fi/image-resizer/api/apitype"

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) RequestId() string {
	return ""
}
