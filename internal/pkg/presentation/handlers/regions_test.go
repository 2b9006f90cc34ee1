package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/api-infraquality/internal/pkg/application/aggregates"
	services "github.com/diwise/api-infraquality/internal/pkg/application/services/infraquality"
	"github.com/diwise/api-infraquality/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestInvokeRegionsHandler(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "", nil)
	is.NoErr(err)

	NewRetrieveRegionsHandler(log, svc).ServeHTTP(rw, req)

	is.Equal(rw.Code, http.StatusOK) // response status should be 200 OK
	is.Equal(len(svc.RegionsCalls()), 1)

	response, err := io.ReadAll(rw.Body)
	is.NoErr(err)

	const expectedResponse string = `{"data":["Matn_District","Baabda_District"]}`
	is.Equal(string(response), expectedResponse)
}

func TestGetRegionQuality(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "?indicator=roads", nil)
	is.NoErr(err)

	NewRetrieveRegionQualityHandler(log, svc).ServeHTTP(rw, req)

	is.Equal(rw.Code, http.StatusOK)         // response status should be 200 OK
	is.Equal(len(svc.RegionMeansCalls()), 1) // RegionMeans should have been called once

	response, err := io.ReadAll(rw.Body)
	is.NoErr(err)

	const expectedResponse string = `{"data":[{"region":"Matn_District","value":1},{"region":"Baabda_District","value":0.5}]}`
	is.Equal(string(response), expectedResponse)
}

func TestGetRegionQualityWithoutAnIndicatorIsABadRequest(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "", nil)
	is.NoErr(err)

	NewRetrieveRegionQualityHandler(log, svc).ServeHTTP(rw, req)

	is.Equal(rw.Code, http.StatusBadRequest)
	is.Equal(len(svc.RegionMeansCalls()), 0)
}

func TestGetRegionQualityAsCSV(t *testing.T) {
	is, r, ts := setupTest(t)
	svc := defaultServiceMock()

	r.Get("/api/quality/regions", NewRetrieveRegionQualityHandler(zerolog.Logger{}, svc))
	response, responseBody := newGetRequest(is, ts, "text/csv", "/api/quality/regions?indicator=roads", nil)

	is.Equal(response.StatusCode, http.StatusOK) // response status should be 200 OK

	const expectedResponse string = "region;value\r\nMatn_District;1\r\nBaabda_District;0.5"
	is.Equal(responseBody, expectedResponse)
}

func TestAnAbsentRegionsParameterSelectsAllRegions(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "?indicator=roads", nil)
	is.NoErr(err)

	NewRetrieveRegionQualityHandler(log, svc).ServeHTTP(rw, req)

	sel := svc.RegionMeansCalls()[0].Sel
	is.True(sel.Contains("Matn_District")) // no filter means every region is selected
	is.True(!sel.Nothing())
}

func TestNamedRegionsAreSelected(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "?indicator=roads&regions=Matn_District,Baabda_District", nil)
	is.NoErr(err)

	NewRetrieveRegionQualityHandler(log, svc).ServeHTTP(rw, req)

	sel := svc.RegionMeansCalls()[0].Sel
	is.True(sel.Contains("Matn_District"))
	is.True(sel.Contains("Baabda_District"))
	is.True(!sel.Contains("Tyre_District"))
}

func TestAnEmptyRegionsParameterSelectsNothing(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "?indicator=roads&regions=", nil)
	is.NoErr(err)

	NewRetrieveRegionQualityHandler(log, svc).ServeHTTP(rw, req)

	is.Equal(rw.Code, http.StatusOK) // empty selections yield empty results, not errors

	sel := svc.RegionMeansCalls()[0].Sel
	is.True(sel.Nothing())
}

func defaultServiceMock() *services.InfraQualityServiceMock {
	ranked := []domain.RegionValue{
		{Region: "Matn_District", Value: 1},
		{Region: "Baabda_District", Value: 0.5},
	}

	return &services.InfraQualityServiceMock{
		RegionsFunc: func() []string {
			return []string{"Matn_District", "Baabda_District"}
		},
		IndicatorsFunc: func() []string {
			return []string{"State of the main roads - good"}
		},
		RegionMeansFunc: func(sel aggregates.Selection, indicator string) []domain.RegionValue {
			return ranked
		},
		TransportSumsFunc: func(sel aggregates.Selection) domain.TransportSums {
			return domain.TransportSums{
				"Matn_District": {"buses": 2, "taxis": 5},
			}
		},
		ServiceBadnessFunc: func(sel aggregates.Selection) []domain.ServiceStat {
			return []domain.ServiceStat{{Service: "main roads", Percentage: 30, Count: 3}}
		},
		ServiceCoverageFunc: func(sel aggregates.Selection) []domain.ServiceStat {
			return []domain.ServiceStat{{Service: "main roads", Percentage: 70, Count: 7}}
		},
		InsightsFunc: func(sel aggregates.Selection, indicator string, mode string) domain.InsightSummary {
			return domain.InsightSummary{
				Indicator:         indicator,
				BestRegion:        &ranked[0],
				WorstRegion:       &ranked[1],
				DominantTransport: "taxis",
				Correlation:       &domain.Correlation{Against: "taxis", Coefficient: 1, Strength: "positive"},
			}
		},
	}
}

func setup(t *testing.T) (*is.I, zerolog.Logger, *httptest.ResponseRecorder) {
	return is.New(t), zerolog.Logger{}, httptest.NewRecorder()
}

func newGetRequest(is *is.I, ts *httptest.Server, accept, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, body)
	is.NoErr(err)

	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}
