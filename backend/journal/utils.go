package journal

import (
	"time"
	"vincit.fi/image-resizer/api/apitype"
)

func toEntry(result *apitype.ResizeResult) *Entry {
	timestamp := result.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return &Entry{
		RequestId:      result.RequestId,
		Path:           result.Path,
		Format:         result.Format.AsId(),
		OriginalWidth:  result.OriginalSize.Width(),
		OriginalHeight: result.OriginalSize.Height(),
		TargetWidth:    result.TargetSize.Width(),
		TargetHeight:   result.TargetSize.Height(),
		Resized:        result.Resized,
		BytesBefore:    result.BytesBefore,
		BytesAfter:     result.BytesAfter,
		DurationMs:     result.Duration.Milliseconds(),
		CreatedTime:    timestamp.UTC(),
	}
}

func toResizeResult(entry Entry) *apitype.ResizeResult {
	return &apitype.ResizeResult{
		RequestId:    entry.RequestId,
		Path:         entry.Path,
		Format:       apitype.FormatFromId(entry.Format),
		OriginalSize: apitype.SizeOf(entry.OriginalWidth, entry.OriginalHeight),
		TargetSize:   apitype.SizeOf(entry.TargetWidth, entry.TargetHeight),
		Resized:      entry.Resized,
		BytesBefore:  entry.BytesBefore,
		BytesAfter:   entry.BytesAfter,
		Duration:     time.Duration(entry.DurationMs) * time.Millisecond,
		Timestamp:    entry.CreatedTime,
	}
}

func toResizeResults(entries []Entry) []*apitype.ResizeResult {
	results := make([]*apitype.ResizeResult, len(entries))
	for i, entry := range entries {
		results[i] = toResizeResult(entry)
	}
	return results
}
