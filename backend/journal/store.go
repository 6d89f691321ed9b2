// Package journal keeps a SQLite log of the resize requests.
package journal

import (
	"errors"
	"github.com/upper/db/v4"
	"sync"
	"vincit.fi/image-resizer/api"
	"vincit.fi/image-resizer/api/apitype"
	"vincit.fi/image-resizer/common/logger"
)

var errNilResult = errors.New("nil resize result")

// Store may be shared by concurrent resize requests. Access to the
// collection is serialized.
type Store struct {
	database   *Database
	collection db.Collection
	mux        sync.Mutex

	api.Journal
}

func NewStore(database *Database) *Store {
	return &Store{
		database:   database,
		collection: database.Session().Collection("resize_journal"),
	}
}

func (s *Store) Record(result *apitype.ResizeResult) error {
	if result == nil {
		return errNilResult
	}
	logger.Trace.Printf("Recording %s", result)
	s.mux.Lock()
	defer s.mux.Unlock()
	_, err := s.collection.Insert(toEntry(result))
	return err
}

func (s *Store) FindByPath(path string) ([]*apitype.ResizeResult, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var entries []Entry
	if err := s.collection.Find(db.Cond{"path": path}).OrderBy("id").All(&entries); err != nil {
		return nil, err
	}
	return toResizeResults(entries), nil
}

func (s *Store) FindByRequestId(requestId string) (*apitype.ResizeResult, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var entry Entry
	if err := s.collection.Find(db.Cond{"request_id": requestId}).One(&entry); err != nil {
		return nil, err
	}
	return toResizeResult(entry), nil
}

// FindResized returns the entries where the file was actually rewritten,
// newest first.
func (s *Store) FindResized(limit int) ([]*apitype.ResizeResult, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var entries []Entry
	res := s.collection.Find(db.Cond{"resized": true}).OrderBy("-id")
	if limit > 0 {
		res = res.Limit(limit)
	}
	if err := res.All(&entries); err != nil {
		return nil, err
	}
	return toResizeResults(entries), nil
}

func (s *Store) Count() (uint64, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.collection.Find().Count()
}

func (s *Store) Close() {
	s.database.Close()
}
