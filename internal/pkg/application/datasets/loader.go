package datasets

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrDataUnavailable is returned when a dataset source cannot be read or
// parsed. It is recoverable: callers substitute the synthetic dataset.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Column names consulted during region derivation. A direct region column
// takes precedence over the compound reference column, where the region is
// whatever follows the final slash.
const (
	regionColumn         = "governorate"
	regionColumnFallback = "region"
	compoundColumn       = "refarea"
)

type Loader interface {
	Load(ctx context.Context, source string) (*domain.Dataset, error)
	Invalidate(source string)
}

// NewLoader creates a loader that memoizes parsed datasets per source. File
// sources are revalidated against the file's modification time, so repeated
// loads re-parse only when the file changes. URL sources stay cached until
// invalidated.
func NewLoader(log zerolog.Logger) Loader {
	return &loader{
		cache: map[string]cacheEntry{},
		log:   log,
	}
}

type cacheEntry struct {
	dataset *domain.Dataset
	modTime time.Time
}

type loader struct {
	mu    sync.Mutex
	cache map[string]cacheEntry

	log zerolog.Logger
}

func (l *loader) Load(ctx context.Context, source string) (*domain.Dataset, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.loadFromURL(ctx, source)
	}

	return l.loadFromFile(source)
}

func (l *loader) Invalidate(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.cache, source)
}

func (l *loader) loadFromFile(source string) (*domain.Dataset, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err.Error())
	}

	if entry, ok := l.cached(source); ok && entry.modTime.Equal(info.ModTime()) {
		return entry.dataset, nil
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err.Error())
	}
	defer f.Close()

	ds, err := parse(f, delimiterFor(source))
	if err != nil {
		return nil, err
	}

	l.log.Info().Msgf("loaded %d records from %s", ds.Len(), source)
	l.store(source, ds, info.ModTime())

	return ds, nil
}

func (l *loader) loadFromURL(ctx context.Context, source string) (*domain.Dataset, error) {
	if entry, ok := l.cached(source); ok {
		return entry.dataset, nil
	}

	body, err := l.fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	ds, err := parse(bytes.NewReader(body), delimiterFor(source))
	if err != nil {
		return nil, err
	}

	l.log.Info().Msgf("loaded %d records from %s", ds.Len(), source)
	l.store(source, ds, time.Time{})

	return ds, nil
}

func (l *loader) fetch(ctx context.Context, source string) ([]byte, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		l.log.Error().Err(err).Msg("failed to create http request")
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err.Error())
	}

	response, err := httpClient.Do(req)
	if err != nil {
		l.log.Error().Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err.Error())
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		l.log.Error().Msgf("request failed, status code not ok: %d", response.StatusCode)
		return nil, fmt.Errorf("%w: status code %d from %s", ErrDataUnavailable, response.StatusCode, source)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		l.log.Error().Err(err).Msg("failed to read response body")
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, err.Error())
	}

	return b, nil
}

func (l *loader) cached(source string) (cacheEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.cache[source]
	return entry, ok
}

func (l *loader) store(source string, ds *domain.Dataset, modTime time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cache[source] = cacheEntry{dataset: ds, modTime: modTime}
}

func delimiterFor(source string) rune {
	if strings.HasSuffix(strings.ToLower(source), ".tsv") {
		return '\t'
	}
	return ','
}

func parse(input io.Reader, delimiter rune) (*domain.Dataset, error) {
	r := csv.NewReader(input)
	r.Comma = delimiter
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %s", ErrDataUnavailable, err.Error())
	}

	columns := make([]string, 0, len(header))
	for _, h := range header {
		columns = append(columns, strings.TrimSpace(h))
	}

	regionIdx := -1
	compoundIdx := -1
	for i, col := range columns {
		switch strings.ToLower(col) {
		case regionColumn, regionColumnFallback:
			if regionIdx < 0 {
				regionIdx = i
			}
		case compoundColumn:
			compoundIdx = i
		}
	}

	records := []domain.Record{}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed record: %s", ErrDataUnavailable, err.Error())
		}

		rec := domain.Record{Values: map[string]float64{}}

		if regionIdx >= 0 {
			rec.Region = strings.TrimSpace(row[regionIdx])
		} else if compoundIdx >= 0 {
			rec.Region = regionFromReference(row[compoundIdx])
		}

		for i, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}
			rec.Values[columns[i]] = v
		}

		records = append(records, rec)
	}

	return domain.NewDataset(columns, records), nil
}

// regionFromReference extracts the region from a compound reference such as
// http://dbpedia.org/page/Matn_District. References without a slash yield an
// empty region, which excludes the row from region keyed aggregates.
func regionFromReference(ref string) string {
	ref = strings.TrimSpace(ref)

	idx := strings.LastIndex(ref, "/")
	if idx < 0 {
		return ""
	}

	return strings.TrimSpace(ref[idx+1:])
}
