// Package scores keeps the high score table.
package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

// Entry is one row of the table.
type Entry struct {
	Name  string `csv:"name"`
	Score int    `csv:"score"`
}

// Table is a descending list of the best scores, capped at a fixed length.
type Table struct {
	path    string
	max     int
	Entries []Entry
}

// New creates an empty table that saves to path.
func New(path string, maxEntries int) *Table {
	if maxEntries <= 0 {
		maxEntries = 10
	}
	return &Table{path: path, max: maxEntries}
}

// Load reads the table at path. A missing file yields an empty table.
func Load(path string, maxEntries int) (*Table, error) {
	t := New(path, maxEntries)
	if path == "" {
		return t, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening scores: %w", err)
	}
	defer f.Close()

	var entries []Entry
	if err := gocsv.UnmarshalFile(f, &entries); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return t, nil
		}
		return nil, fmt.Errorf("parsing scores: %w", err)
	}
	t.Entries = entries
	t.normalize()
	return t, nil
}

// Save writes the table back to its path. A table without a path is not saved.
func (t *Table) Save() error {
	if t.path == "" {
		return nil
	}
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating scores directory: %w", err)
		}
	}

	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("creating scores: %w", err)
	}
	if err := gocsv.MarshalFile(&t.Entries, f); err != nil {
		f.Close()
		return fmt.Errorf("writing scores: %w", err)
	}
	return f.Close()
}

// Qualifies reports whether score would make it onto the table.
func (t *Table) Qualifies(score int) bool {
	if len(t.Entries) < t.max {
		return true
	}
	return score > t.Entries[len(t.Entries)-1].Score
}

// Insert adds a score and returns its rank (0-based), or -1 if it fell off
// the end. Ties keep earlier entries ahead.
func (t *Table) Insert(name string, score int) int {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "anon"
	}

	rank := sort.Search(len(t.Entries), func(i int) bool {
		return t.Entries[i].Score < score
	})
	t.Entries = append(t.Entries, Entry{})
	copy(t.Entries[rank+1:], t.Entries[rank:])
	t.Entries[rank] = Entry{Name: name, Score: score}

	if len(t.Entries) > t.max {
		t.Entries = t.Entries[:t.max]
	}
	if rank >= t.max {
		return -1
	}
	return rank
}

// Best returns the top score, or 0 for an empty table.
func (t *Table) Best() int {
	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[0].Score
}

// normalize sorts loaded rows and enforces the cap.
func (t *Table) normalize() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Score > t.Entries[j].Score
	})
	if len(t.Entries) > t.max {
		t.Entries = t.Entries[:t.max]
	}
}
