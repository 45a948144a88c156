// Package state persists list preferences across invocations: the last
// search and page number of each named list in a session-scoped store, and
// the user's rows-per-page choice in a durable one. This mirrors the two
// browser storage keys of the web client: session storage for search state,
// local storage for page size.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/peterbourgon/diskv/v3"

	"github.com/freshcms/payadm/internal/model"
)

// SharedPerPageKey is the durable slot used by lists without a name of
// their own.
const SharedPerPageKey = "rows-per-page"

// ListState is everything a named list restores on startup.
type ListState struct {
	SearchText string                 `json:"searchText,omitempty"`
	Filters    []model.FilterCriteria `json:"filters,omitempty"`
	PageNo     int                    `json:"pageNo,omitempty"`
}

// Store is the persistence contract for list preferences.
type Store interface {
	// LoadList returns the persisted state of a named list. Unknown names
	// and the empty name return the zero state.
	LoadList(name string) ListState
	// SaveSearch persists the search text and filters of a named list.
	// The empty name is a no-op.
	SaveSearch(name, searchText string, filters []model.FilterCriteria) error
	// SavePage persists the current page of a named list and the
	// rows-per-page choice (durable, shared across lists when unnamed).
	SavePage(name string, pageNo, perPage int) error
	// PerPage returns the persisted rows-per-page for a list, or 0 when
	// none has been stored.
	PerPage(name string) int
}

// DiskStore is a Store backed by two diskv trees.
type DiskStore struct {
	durable *diskv.Diskv
	session *diskv.Diskv
}

var _ Store = (*DiskStore)(nil)

// Open returns a DiskStore rooted at the two directories.
func Open(durableDir, sessionDir string) *DiskStore {
	return &DiskStore{
		durable: diskv.New(diskv.Options{
			BasePath:     durableDir,
			CacheSizeMax: 64 * 1024,
		}),
		session: diskv.New(diskv.Options{
			BasePath:     sessionDir,
			CacheSizeMax: 64 * 1024,
		}),
	}
}

// DefaultDirs returns the standard store locations: a durable tree under
// the user's state directory and a session tree under the OS temp
// directory. The session tree is keyed by PAYADM_SESSION when set, falling
// back to the parent process (the shell), so each terminal session gets
// its own search state.
func DefaultDirs() (durable, session string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}
	durable = filepath.Join(home, ".local", "state", "payadm")

	sid := os.Getenv("PAYADM_SESSION")
	if sid == "" {
		sid = strconv.Itoa(os.Getppid())
	}
	session = filepath.Join(os.TempDir(), "payadm-session-"+sid)
	return durable, session, nil
}

// LoadList implements Store.
func (s *DiskStore) LoadList(name string) ListState {
	if name == "" {
		return ListState{}
	}
	data, err := s.session.Read(name)
	if err != nil {
		return ListState{}
	}
	var st ListState
	if err := json.Unmarshal(data, &st); err != nil {
		return ListState{}
	}
	return st
}

// SaveSearch implements Store.
func (s *DiskStore) SaveSearch(name, searchText string, filters []model.FilterCriteria) error {
	if name == "" {
		return nil
	}
	st := s.LoadList(name)
	st.SearchText = searchText
	st.Filters = filters
	return s.writeSession(name, st)
}

// SavePage implements Store.
func (s *DiskStore) SavePage(name string, pageNo, perPage int) error {
	if name != "" {
		st := s.LoadList(name)
		st.PageNo = pageNo
		if err := s.writeSession(name, st); err != nil {
			return err
		}
	}

	key := name
	if key == "" {
		key = SharedPerPageKey
	}
	if err := s.durable.Write(key, []byte(strconv.Itoa(perPage))); err != nil {
		return fmt.Errorf("persist rows-per-page: %w", err)
	}
	return nil
}

// PerPage implements Store.
func (s *DiskStore) PerPage(name string) int {
	key := name
	if key == "" {
		key = SharedPerPageKey
	}
	data, err := s.durable.Read(key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func (s *DiskStore) writeSession(name string, st ListState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.session.Write(name, data); err != nil {
		return fmt.Errorf("persist list state: %w", err)
	}
	return nil
}
