package journal

import (
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"path/filepath"
	"vincit.fi/image-resizer/common/logger"
	"vincit.fi/image-resizer/common/util"
)

type TableExist bool

const (
	TableNotExist TableExist = false
	TableExists   TableExist = true
)

type Database struct {
	session db.Session
	dbPath  string
}

func NewInMemoryDatabase() (*Database, error) {
	logger.Info.Printf("Initializing in-memory journal database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}
	// Every new connection would get its own empty in-memory database
	session.SetMaxOpenConns(1)

	database := &Database{session: session, dbPath: ":memory:"}
	if _, err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func NewDatabase(file string) (*Database, error) {
	if err := util.MakeDirectoriesIfNotExist(filepath.Dir(file)); err != nil {
		return nil, err
	}

	logger.Info.Printf("Initializing journal database %s", file)
	var settings = sqlite.ConnectionURL{
		Database: file,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}

	var version map[string]interface{}
	if err := session.SQL().Select(db.Func("sqlite_version")).One(&version); err == nil {
		logger.Debug.Printf("Using SQLite version %s", version["sqlite_version()"])
	}

	database := &Database{session: session, dbPath: file}
	if _, err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func (s *Database) Path() string {
	return s.dbPath
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Migrate() (TableExist, error) {
	logger.Debug.Printf("Running journal migrations")
	tablesExists := s.doesTablesExists()

	if !tablesExists {
		logger.Debug.Print("Migration table doesn't exist. Creating...")
		if _, err := s.session.SQL().Exec(`
			CREATE TABLE migration (
				id INTEGER PRIMARY KEY
			)
		`); err != nil {
			logger.Error.Print("Error while creating migration table ", err)
			return TableExist(tablesExists), err
		}
	}

	if err := s.migrate(); err != nil {
		logger.Error.Print("Error while running migrations ", err)
		return TableExist(tablesExists), err
	}
	logger.Debug.Print("All migrations done")

	if tablesExists {
		return TableExists, nil
	} else {
		return TableNotExist, nil
	}
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name= 'migration';
	`)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) migrate() error {
	return s.session.Tx(func(session db.Session) error {
		if migrationStatusesById, err := s.findAlreadyRunMigrations(session); err != nil {
			return err
		} else {
			for _, migration := range migrations {
				if err := s.runMigration(session, migration, migrationStatusesById); err != nil {
					return err
				}
			}
			return nil
		}
	})
}

func (s *Database) runMigration(session db.Session, migration migration, migrationStatusesById map[MigrationId]bool) error {
	if _, found := migrationStatusesById[migration.id]; found {
		logger.Trace.Printf("Migration %d is already done", migration.id)
		return nil
	}

	logger.Debug.Printf("Running migration %d: %s", migration.id, migration.description)
	if _, err := session.SQL().Exec(migration.query); err != nil {
		return err
	}
	_, err := session.SQL().InsertInto("migration").Columns("id").Values(migration.id).Exec()
	return err
}

func (s *Database) findAlreadyRunMigrations(session db.Session) (map[MigrationId]bool, error) {
	var runMigrations []Migration
	if err := session.Collection("migration").Find().All(&runMigrations); err != nil {
		return nil, err
	}

	var migrationStatusesById = map[MigrationId]bool{}
	for _, migration := range runMigrations {
		migrationStatusesById[migration.Id] = true
	}
	return migrationStatusesById, nil
}

func (s *Database) Close() {
	logger.Debug.Printf("Closing journal database %s", s.dbPath)
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			logger.Error.Print("Error while trying to close database ", err)
		}
	} else {
		logger.Warn.Printf("No database instance to close")
	}
}
