package application

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/matryer/is"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func NewAppForTesting() (zerolog.Logger, *infraqualityAPI) {
	r := chi.NewRouter()

	// the dataset source does not exist, so the service falls back to the
	// built-in demonstration data
	return zerolog.Logger{}, newInfraQualityAPI(r, context.Background(), "testdata/missing.csv", nil)
}

func NewTestRequest(is *is.I, ts *httptest.Server, method, path string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	resp, _ := http.DefaultClient.Do(req)
	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}

func TestApiRespondsToHealthProbe(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, _ := NewTestRequest(is, ts, http.MethodGet, "/health", nil)
	is.Equal(resp.StatusCode, http.StatusOK) // health probe should respond with 200 OK
}

func TestGetRegionsReturnsDemonstrationRegions(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/api/regions", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"data":["Marjeyoun_District","Batroun_District","Zgharta_District","North_Governorate","Matn_District","Tyre_District","Beqaa_Governorate","Sidon_District"]}`) // expected the demonstration regions in input order
}

func TestGetRegionQualityRequiresAnIndicator(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, _ := NewTestRequest(is, ts, http.MethodGet, "/api/quality/regions", nil)
	is.Equal(resp.StatusCode, http.StatusBadRequest) // quality rankings require an indicator parameter
}

func TestGetRegionQuality(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/api/quality/regions?indicator=State%20of%20the%20main%20roads%20-%20good", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")
	is.True(strings.HasPrefix(body, `{"data":[{"region":"`)) // expected a ranked list of regions
}

func TestGetServiceCoverage(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/api/services/coverage", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"service":"main roads"`)) // expected coverage for the default service mappings
}

func TestGetInsightsNamesTheDominantTransport(t *testing.T) {
	is := is.New(t)
	_, api := NewAppForTesting()

	ts := httptest.NewServer(api.router)
	defer ts.Close()

	resp, body := NewTestRequest(is, ts, http.MethodGet, "/api/insights?indicator=State%20of%20the%20main%20roads%20-%20good", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"dominantTransport":"taxis"`)) // taxis dominate the demonstration data
	is.True(strings.Contains(body, `"bestRegion"`))                // expected a best region for eight ranked regions
}
