// Package provider implements the external inflation-data source against the
// IMF IFS SDMX-JSON compact-data API.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta/pkg/domain"
	"github.com/moneta-app/moneta/pkg/provider"
)

const monthlyFrequency = "M"

// IMFClient fetches monthly consumer-price-index series from the IMF IFS
// data service. All calls are bounded by the HTTP client's timeout; a timeout
// surfaces as an error and the scan treats it as "no series" for that
// country.
type IMFClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewIMFClient(baseURL string, timeout time.Duration, logger *slog.Logger) *IMFClient {
	return &IMFClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("provider", "imf"),
	}
}

// SDMX-JSON compact-data response shapes. OBS_VALUE arrives as a string.
type ifsResponse struct {
	CompactData *compactData `json:"CompactData"`
}

type compactData struct {
	DataSet *dataSet `json:"DataSet"`
}

type dataSet struct {
	Series *ifsSeries `json:"Series"`
}

type ifsSeries struct {
	Frequency string           `json:"@FREQ"`
	RefArea   string           `json:"@REF_AREA"`
	Indicator string           `json:"@INDICATOR"`
	Obs       []ifsObservation `json:"Obs"`
}

type ifsObservation struct {
	TimePeriod string `json:"@TIME_PERIOD"`
	ObsValue   string `json:"@OBS_VALUE"`
}

// FetchMonthlySeries fetches the monthly CPI series for a country over the
// given year window. It returns (nil, nil) when the response carries no
// series for the country.
func (c *IMFClient) FetchMonthlySeries(
	ctx context.Context,
	country domain.Country,
	startYear, endYear int,
) (*provider.Series, error) {
	url := fmt.Sprintf("%s/%s.%s.%s?startPeriod=%d&endPeriod=%d",
		c.baseURL, monthlyFrequency, country, domain.IndicatorPCPIIX, startYear, endYear)
	c.logger.Debug("fetching inflation series", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imf data service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed ifsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode imf response: %w", err)
	}

	if parsed.CompactData == nil || parsed.CompactData.DataSet == nil || parsed.CompactData.DataSet.Series == nil {
		return nil, nil
	}
	return mapSeries(parsed.CompactData.DataSet.Series)
}

func mapSeries(s *ifsSeries) (*provider.Series, error) {
	series := &provider.Series{
		Frequency:    s.Frequency,
		Country:      domain.Country(s.RefArea),
		Indicator:    domain.Indicator(s.Indicator),
		Observations: make([]provider.Observation, 0, len(s.Obs)),
	}
	for _, obs := range s.Obs {
		value, err := decimal.NewFromString(obs.ObsValue)
		if err != nil {
			return nil, fmt.Errorf("invalid observation value %q for period %s: %w", obs.ObsValue, obs.TimePeriod, err)
		}
		series.Observations = append(series.Observations, provider.Observation{
			Period: obs.TimePeriod,
			Value:  value,
		})
	}
	return series, nil
}

var _ provider.InflationSource = (*IMFClient)(nil)
