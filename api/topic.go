package api

type Topic string

const (
	ResizeCompleted Topic = "resize-completed"
	ResizeSkipped   Topic = "resize-skipped"
	ResizeFailed    Topic = "resize-failed"
	ShowError       Topic = "show-error"
)
