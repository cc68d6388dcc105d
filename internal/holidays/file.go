package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore implements Provider on top of per-year JSON files in a local
// directory. It doubles as the write-through cache for Composite.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// lazily on the first Save.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

// YearEvents loads the holidays of the given Jalali year from disk.
func (fs *FileStore) YearEvents(year int) ([]Event, error) {
	data, err := os.ReadFile(fs.yearPath(year))
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday cache for year %d: %w", year, err)
	}

	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to parse holiday cache for year %d: %w", year, err)
	}

	sortEvents(events)
	return events, nil
}

// Holiday returns the holiday title for the given Jalali date.
func (fs *FileStore) Holiday(jy, jm, jd int) (string, bool, error) {
	events, err := fs.YearEvents(jy)
	if err != nil {
		return "", false, err
	}

	title, ok := findHoliday(events, jy, jm, jd)
	return title, ok, nil
}

// Save writes the holidays of one Jalali year to disk, replacing any
// previous copy.
func (fs *FileStore) Save(year int, events []Event) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create holiday cache directory: %w", err)
	}

	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal holiday cache: %w", err)
	}

	if err := os.WriteFile(fs.yearPath(year), data, 0o644); err != nil {
		return fmt.Errorf("failed to write holiday cache: %w", err)
	}

	fs.logger.Debug("Holiday cache written",
		zap.Int("year", year),
		zap.Int("holidays", len(events)))

	return nil
}

func (fs *FileStore) yearPath(year int) string {
	return filepath.Join(fs.dir, fmt.Sprintf("holidays_%d.json", year))
}
