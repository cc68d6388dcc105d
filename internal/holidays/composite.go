package holidays

import (
	"go.uber.org/zap"
)

// Composite implements Provider with a fallback strategy.
// Primary: Remote (API). Fallback: FileStore (local cache).
// Successful remote fetches are written through to the file store so the
// tool keeps working offline.
type Composite struct {
	primary  Provider
	fallback *FileStore
	logger   *zap.Logger
}

// NewComposite creates a Composite provider.
func NewComposite(primary Provider, fallback *FileStore, logger *zap.Logger) *Composite {
	return &Composite{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// YearEvents returns the holidays of the given Jalali year, preferring the
// primary provider.
func (c *Composite) YearEvents(year int) ([]Event, error) {
	events, err := c.primary.YearEvents(year)
	if err == nil {
		if saveErr := c.fallback.Save(year, events); saveErr != nil {
			c.logger.Warn("Failed to write holiday cache",
				zap.Int("year", year),
				zap.Error(saveErr))
		}
		return events, nil
	}

	c.logger.Warn("Primary holiday provider failed, falling back to file cache",
		zap.Int("year", year),
		zap.Error(err))

	return c.fallback.YearEvents(year)
}

// Holiday returns the holiday title for the given Jalali date.
func (c *Composite) Holiday(jy, jm, jd int) (string, bool, error) {
	events, err := c.YearEvents(jy)
	if err != nil {
		return "", false, err
	}

	title, ok := findHoliday(events, jy, jm, jd)
	return title, ok, nil
}
