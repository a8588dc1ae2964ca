package repositories

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"travelshare/app/logging"
)

// StoreOptions configures how the document store is opened.
type StoreOptions struct {
	Path     string
	InMemory bool
}

// Store owns the Badger handle shared by every repository. It is created
// once at startup and passed to the repositories that need it.
type Store struct {
	db       *badger.DB
	path     string
	inMemory bool
}

// OpenStore opens (or creates) the Badger database described by opts.
func OpenStore(opts StoreOptions) (*Store, error) {
	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Path == "" {
			return nil, fmt.Errorf("database path is required")
		}
		if err := os.MkdirAll(opts.Path, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	badgerOpts = badgerOpts.
		WithLogger(badgerLogger{log: logging.WithComponent("badger")}).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &Store{db: db, path: opts.Path, inMemory: opts.InMemory}, nil
}

// DB exposes the underlying handle to the repositories.
func (s *Store) DB() *badger.DB {
	return s.db
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the store can still serve reads.
func (s *Store) Ping() error {
	if s.db.IsClosed() {
		return fmt.Errorf("database is closed")
	}
	return s.db.View(func(txn *badger.Txn) error { return nil })
}

// Clear drops every document.
func (s *Store) Clear() error {
	return s.db.DropAll()
}

// Backup writes a full backup of the store to w and returns the version
// the backup was taken at.
func (s *Store) Backup(w io.Writer) (uint64, error) {
	return s.db.Backup(w, 0)
}

// Restore loads a backup produced by Backup.
func (s *Store) Restore(r io.Reader) error {
	return s.db.Load(r, 4)
}

// Repositories builds the Badger repositories sharing this store.
func (s *Store) Repositories() (*BadgerPublicationRepository, *BadgerCommentRepository, *BadgerReactionRepository) {
	return NewBadgerPublicationRepository(s.db), NewBadgerCommentRepository(s.db), NewBadgerReactionRepository(s.db)
}

// badgerLogger routes Badger's internal logging through zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
