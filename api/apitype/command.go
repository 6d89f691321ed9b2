package apitype

type Command interface {
	RequestId() string
}

type ResizedCommand struct {
	Result *ResizeResult
}

func (s *ResizedCommand) RequestId() string {
	return s.Result.RequestId
}

type ResizeFailedCommand struct {
	Id   string
	Path string
	Err  error
}

func (s *ResizeFailedCommand) RequestId() string {
	return s.Id
}
