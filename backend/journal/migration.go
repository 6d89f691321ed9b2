package journal

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Resize journal",
		query: `
			CREATE TABLE resize_journal (
			    id INTEGER PRIMARY KEY,
			    request_id TEXT,
			    path TEXT,
			    format INT,
			    original_width INT,
			    original_height INT,
			    target_width INT,
			    target_height INT,
			    resized INT,
			    bytes_before INT,
			    bytes_after INT,
			    duration_ms INT,
			    created_timestamp DATETIME,

			    UNIQUE (request_id)
			);

			CREATE INDEX resize_journal_path_idx ON resize_journal (path);
		`,
	},
}
