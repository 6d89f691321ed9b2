package journal

import "time"

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type Entry struct {
	Id             int64     `db:"id,omitempty"`
	RequestId      string    `db:"request_id"`
	Path           string    `db:"path"`
	Format         int64     `db:"format"`
	OriginalWidth  int       `db:"original_width"`
	OriginalHeight int       `db:"original_height"`
	TargetWidth    int       `db:"target_width"`
	TargetHeight   int       `db:"target_height"`
	Resized        bool      `db:"resized"`
	BytesBefore    int64     `db:"bytes_before"`
	BytesAfter     int64     `db:"bytes_after"`
	DurationMs     int64     `db:"duration_ms"`
	CreatedTime    time.Time `db:"created_timestamp"`
}
