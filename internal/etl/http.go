package etl

import (
	"context"
	"net/http"

	"github.com/BartekS5/tabconv/pkg/logger"
	"github.com/BartekS5/tabconv/pkg/models"
)

// URLExtractor fetches a CSV or JSON document with a single GET request.
type URLExtractor struct {
	URL    string
	Format string
	Client *http.Client
}

func (u *URLExtractor) Extract(ctx context.Context) (*models.Table, error) {
	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: u.URL, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: u.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: u.URL, StatusCode: resp.StatusCode}
	}
	logger.Debugf("fetched %s (%s)", u.URL, resp.Header.Get("Content-Type"))

	return decode(resp.Body, u.Format)
}
