package holidays

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAPIURL is the public calendar endpoint queried per Jalali year.
	DefaultAPIURL = "https://pnldev.com/api/calender"

	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// Remote implements Provider against the pnldev calendar API. Fetched years
// are cached in memory for the configured TTL.
type Remote struct {
	apiURL     string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration

	cacheMu sync.RWMutex
	cache   map[int]*cachedYear
}

type cachedYear struct {
	events    []Event
	fetchedAt time.Time
}

// calendarResponse mirrors the pnldev API JSON shape.
type calendarResponse struct {
	Status bool                 `json:"status"`
	Result map[string]monthData `json:"result"` // keyed by month number
}

type monthData map[string]dayData // keyed by day number

type dayData struct {
	Solar   solarDate `json:"solar"`
	Holiday bool      `json:"holiday"`
	Event   []string  `json:"event"`
}

type solarDate struct {
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	DayWeek string `json:"dayWeek"`
}

// NewRemote creates a Remote provider. An empty apiURL selects DefaultAPIURL
// and a zero cacheTTL selects the 24h default.
func NewRemote(apiURL string, cacheTTL time.Duration, logger *zap.Logger) *Remote {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &Remote{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
		cache:    make(map[int]*cachedYear),
	}
}

// YearEvents returns all holidays of the given Jalali year, fetching from
// the API unless a fresh cached copy exists.
func (r *Remote) YearEvents(year int) ([]Event, error) {
	r.cacheMu.RLock()
	if cached, ok := r.cache[year]; ok {
		if time.Since(cached.fetchedAt) < r.cacheTTL {
			r.cacheMu.RUnlock()
			r.logger.Debug("Using cached holiday data",
				zap.Int("year", year))
			return cached.events, nil
		}
	}
	r.cacheMu.RUnlock()

	events, err := r.fetchYear(year)
	if err != nil {
		return nil, err
	}

	r.cacheMu.Lock()
	r.cache[year] = &cachedYear{
		events:    events,
		fetchedAt: time.Now(),
	}
	r.cacheMu.Unlock()

	return events, nil
}

// Holiday returns the holiday title for the given Jalali date.
func (r *Remote) Holiday(jy, jm, jd int) (string, bool, error) {
	events, err := r.YearEvents(jy)
	if err != nil {
		return "", false, err
	}

	title, ok := findHoliday(events, jy, jm, jd)
	return title, ok, nil
}

// fetchYear downloads and parses one Jalali year of holiday data.
func (r *Remote) fetchYear(year int) ([]Event, error) {
	url := fmt.Sprintf("%s?year=%d&holiday=true", r.apiURL, year)

	r.logger.Debug("Fetching holiday data",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := r.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var payload calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse holiday JSON: %w", err)
	}

	if !payload.Status {
		return nil, fmt.Errorf("holiday API returned status false for year %d", year)
	}

	var events []Event
	for _, days := range payload.Result {
		for _, day := range days {
			if !day.Holiday {
				continue
			}

			title := "تعطیل رسمی"
			if len(day.Event) > 0 {
				title = strings.Join(day.Event, "؛ ")
			}

			events = append(events, Event{
				Year:  day.Solar.Year,
				Month: day.Solar.Month,
				Day:   day.Solar.Day,
				Title: title,
			})
		}
	}

	sortEvents(events)

	r.logger.Info("Holiday data fetched",
		zap.Int("year", year),
		zap.Int("holidays", len(events)))

	return events, nil
}

// ClearCache drops all cached years.
func (r *Remote) ClearCache() {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	r.cache = make(map[int]*cachedYear)
	r.logger.Info("Holiday cache cleared")
}
