// Package bdata resolves BIN prefixes to card metadata. The built-in table
// can be extended with records read from bin data files.
package bdata

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"

	"git.thinkinpower.net/cardkit/file"
	"git.thinkinpower.net/cardkit/mod"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const (
	BinDatabaseModeMemory = "memory"

	// MaxPrefixLength bounds what is accepted as a BIN; longer inputs are
	// card numbers and never stored.
	MaxPrefixLength = 8
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNoDataDir = errors.New("data directory not configured")
)

type BinDataConfig struct {
	DataDir string
}

type BinDatabase interface {
	Init(cfg BinDataConfig) error
	Reload() error
	Lookup(normalized string) mod.BinMetadata
	ReadExact(prefix string) (mod.BinMetadata, error)
	Save(record mod.BinRecord) error
}

// Open creates and initialises the database for mode.
func Open(mode string, cfg BinDataConfig) (BinDatabase, error) {
	var db BinDatabase
	switch mode {
	case BinDatabaseModeMemory:
		db = NewMemoryDatabase()
	default:
		logger.Warnf("unknown bin database mode %q, falling back to memory", mode)
		db = NewMemoryDatabase()
	}
	if err := db.Init(cfg); err != nil {
		return nil, errors.Wrap(err, "init bin database")
	}
	return db, nil
}

// ValidPrefix reports whether s is a digit string short enough to be a BIN.
func ValidPrefix(s string) bool {
	if s == "" || len(s) > MaxPrefixLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Watch reloads db whenever a bin data file in dir is created or written.
// It blocks until ctx is done.
func Watch(ctx context.Context, db BinDatabase, dir string) error {
	var (
		watcher *fsnotify.Watcher
		err     error
	)
	if watcher, err = fsnotify.NewWatcher(); err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Error(err)
		}
	}()
	if err = watchTree(watcher, dir); err != nil {
		return err
	}
	logger.Infof("watching bin data directory %s", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						logger.Error(err)
					}
					handleFileEvent(db, file.FileEvent{Filepath: event.Name, FileCreated: true})
					continue
				}
			}
			if !isBinDataFile(event.Name) {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				handleFileEvent(db, file.FileEvent{Filepath: event.Name, FileCreated: false})
			} else if event.Op&fsnotify.Create == fsnotify.Create {
				handleFileEvent(db, file.FileEvent{Filepath: event.Name, FileCreated: true})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorf("watch %s error: %s", dir, err)
		}
	}
}

// watchTree adds dir and every directory below it, matching the files
// Reload reads.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
		return nil
	})
}

func handleFileEvent(db BinDatabase, e file.FileEvent) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("reload bin data panic: %v\n%s", err, string(debug.Stack()))
		}
	}()
	if e.FileCreated {
		logger.Infof("file created %s", e.Filepath)
	} else {
		logger.Infof("file modified %s", e.Filepath)
	}
	if err := db.Reload(); err != nil {
		logger.Errorf("reload bin data error: %s", err)
	}
}

func isBinDataFile(path string) bool {
	return filepath.Ext(path) == binDataFileExt
}
