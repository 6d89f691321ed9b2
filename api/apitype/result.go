package apitype

import (
	"fmt"
	"time"
)

// ResizeResult describes one completed ResizeFile request.
type ResizeResult struct {
	RequestId    string
	Path         string
	Format       Format
	OriginalSize Size
	TargetSize   Size
	Resized      bool
	BytesBefore  int64
	BytesAfter   int64
	Duration     time.Duration
	Timestamp    time.Time
}

func (s *ResizeResult) String() string {
	if s == nil {
		return "ResizeResult<nil>"
	}
	if !s.Resized {
		return fmt.Sprintf("ResizeResult{%s %s unchanged}", s.Path, s.OriginalSize)
	}
	return fmt.Sprintf("ResizeResult{%s %s -> %s}", s.Path, s.OriginalSize, s.TargetSize)
}
