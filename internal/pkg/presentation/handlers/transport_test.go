package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/diwise/api-infraquality/internal/pkg/domain"
)

func TestInvokeTransportSumsHandler(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "", nil)
	is.NoErr(err)

	NewRetrieveTransportSumsHandler(log, svc).ServeHTTP(rw, req)

	is.Equal(rw.Code, http.StatusOK) // response status should be 200 OK
	is.Equal(len(svc.TransportSumsCalls()), 1)

	response, err := io.ReadAll(rw.Body)
	is.NoErr(err)

	var body struct {
		Data domain.TransportSums `json:"data"`
	}
	err = json.Unmarshal(response, &body)
	is.NoErr(err)

	is.Equal(body.Data["Matn_District"]["taxis"], 5.0)
	is.Equal(body.Data["Matn_District"]["buses"], 2.0)
}

func TestTransportSumsForwardsTheRegionSelection(t *testing.T) {
	is, log, rw := setup(t)
	svc := defaultServiceMock()
	req, err := http.NewRequest("GET", "?regions=Matn_District", nil)
	is.NoErr(err)

	NewRetrieveTransportSumsHandler(log, svc).ServeHTTP(rw, req)

	sel := svc.TransportSumsCalls()[0].Sel
	is.True(sel.Contains("Matn_District"))
	is.True(!sel.Contains("Baabda_District"))
}
