package etl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/data.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"A": 1, "B": "x"}, {"A": 2, "B": "y"}]`))
	})
	mux.HandleFunc("/data.csv", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("A,B\n1,x\n2,y\n"))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestURLExtractor(t *testing.T) {
	t.Parallel()
	server := newDataServer(t)

	for _, format := range []string{"json", "csv"} {
		t.Run(format, func(t *testing.T) {
			extractor := &URLExtractor{URL: server.URL + "/data." + format, Format: format, Client: server.Client()}
			table, err := extractor.Extract(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B"}, table.ColumnNames())
			assert.Equal(t, []interface{}{int64(1), int64(2)}, table.Column("A").Values)
			assert.Equal(t, []interface{}{"x", "y"}, table.Column("B").Values)
		})
	}
}

func TestURLExtractorStatusError(t *testing.T) {
	t.Parallel()
	server := newDataServer(t)

	extractor := &URLExtractor{URL: server.URL + "/missing", Format: "json"}
	_, err := extractor.Extract(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestURLExtractorTransportError(t *testing.T) {
	t.Parallel()
	server := newDataServer(t)
	url := server.URL + "/data.json"
	server.Close()

	_, err := (&URLExtractor{URL: url, Format: "json"}).Extract(context.Background())
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
	assert.NotNil(t, fetchErr.Unwrap())
}

func TestURLExtractorCanceled(t *testing.T) {
	t.Parallel()
	server := newDataServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&URLExtractor{URL: server.URL + "/data.csv", Format: "csv"}).Extract(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
