package bdata

import (
	"path/filepath"
	"sort"
	"sync"

	"git.thinkinpower.net/cardkit/file"
	"git.thinkinpower.net/cardkit/mod"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// PrefixTable resolves a card number to the metadata of its longest known
// prefix.
type PrefixTable struct {
	prefixes []string
	entries  map[string]mod.BinMetadata
}

var builtin = NewPrefixTable(builtinBins)

// Static returns the table compiled into the binary.
func Static() *PrefixTable {
	return builtin
}

func NewPrefixTable(entries map[string]mod.BinMetadata) *PrefixTable {
	t := &PrefixTable{
		prefixes: make([]string, 0, len(entries)),
		entries:  make(map[string]mod.BinMetadata, len(entries)),
	}
	for prefix, md := range entries {
		t.prefixes = append(t.prefixes, prefix)
		t.entries[prefix] = md
	}
	sort.Slice(t.prefixes, func(i, j int) bool {
		if len(t.prefixes[i]) != len(t.prefixes[j]) {
			return len(t.prefixes[i]) > len(t.prefixes[j])
		}
		return t.prefixes[i] < t.prefixes[j]
	})
	return t
}

// Lookup returns the metadata of the longest prefix normalized starts with,
// or the zero value when none does.
func (t *PrefixTable) Lookup(normalized string) mod.BinMetadata {
	if normalized == "" {
		return mod.BinMetadata{}
	}
	for _, prefix := range t.prefixes {
		if len(prefix) <= len(normalized) && normalized[:len(prefix)] == prefix {
			return t.entries[prefix]
		}
	}
	return mod.BinMetadata{}
}

func (t *PrefixTable) exact(prefix string) (mod.BinMetadata, bool) {
	md, ok := t.entries[prefix]
	return md, ok
}

func (t *PrefixTable) Len() int {
	return len(t.prefixes)
}

type memoryDatabase struct {
	mu      sync.RWMutex
	overlay map[string]mod.BinMetadata
	table   *PrefixTable
	dataDir string
}

func NewMemoryDatabase() BinDatabase {
	return &memoryDatabase{overlay: make(map[string]mod.BinMetadata), table: builtin}
}

func (m *memoryDatabase) Init(cfg BinDataConfig) error {
	m.mu.Lock()
	m.dataDir = cfg.DataDir
	m.mu.Unlock()
	if cfg.DataDir == "" {
		return nil
	}
	return m.Reload()
}

// Reload replaces the overlay with the records of every bin data file
// under the data directory.
func (m *memoryDatabase) Reload() error {
	m.mu.RLock()
	dataDir := m.dataDir
	m.mu.RUnlock()
	if dataDir == "" {
		return nil
	}

	var (
		filepaths []string
		err       error
	)
	if filepaths, err = file.SearchDir(dataDir, isBinDataFile); err != nil {
		return errors.Wrapf(err, "search bin data files in %s", dataDir)
	}

	overlay := make(map[string]mod.BinMetadata)
	for _, path := range filepaths {
		var records []mod.BinRecord
		if records, err = readBinFile(path); err != nil {
			return err
		}
		for _, r := range records {
			overlay[r.Prefix] = r.BinMetadata
		}
	}

	m.mu.Lock()
	m.overlay = overlay
	m.table = merge(overlay)
	m.mu.Unlock()
	logger.Infof("bin overlay loaded, files: %d, prefixes: %d", len(filepaths), len(overlay))
	return nil
}

func (m *memoryDatabase) Lookup(normalized string) mod.BinMetadata {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table.Lookup(normalized)
}

func (m *memoryDatabase) ReadExact(prefix string) (mod.BinMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if md, ok := m.table.exact(prefix); ok {
		return md, nil
	}
	return mod.BinMetadata{}, errors.Wrapf(ErrNotFound, "bin %s", prefix)
}

func (m *memoryDatabase) Save(record mod.BinRecord) error {
	if !ValidPrefix(record.Prefix) {
		return errors.Errorf("invalid bin %q", record.Prefix)
	}
	if _, err := m.ReadExact(record.Prefix); err == nil {
		logger.Infof("bin %s already known, feedback ignored", record.Prefix)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// a concurrent save may have stored the prefix since the check above
	if _, ok := m.table.exact(record.Prefix); ok {
		return nil
	}
	if m.dataDir == "" {
		return ErrNoDataDir
	}
	if err := appendBinFile(filepath.Join(m.dataDir, feedbackFileName), record); err != nil {
		return err
	}
	m.overlay[record.Prefix] = record.BinMetadata
	m.table = merge(m.overlay)
	return nil
}

func merge(overlay map[string]mod.BinMetadata) *PrefixTable {
	entries := make(map[string]mod.BinMetadata, len(builtinBins)+len(overlay))
	for prefix, md := range builtinBins {
		entries[prefix] = md
	}
	for prefix, md := range overlay {
		entries[prefix] = md
	}
	return NewPrefixTable(entries)
}
