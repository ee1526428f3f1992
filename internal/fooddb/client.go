package fooddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

// https://fdc.nal.usda.gov/api-guide
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

const (
	oneHour         = 60 * 60
	foodCacheExpire = oneHour
	megabyte        = 1024 * 1024
	cacheSize       = 20 * megabyte
)

var ErrFoodNotFound = errors.New("food not found")

// Client proxies FoodData Central and returns foods already normalized
// to the app nutrient schema. Normalized results are cached for an hour.
type Client struct {
	cache          *freecache.Cache
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewClient(baseURL, apiKey string, httpClient *http.Client, metricsManager *metrics.Manager) *Client {
	return &Client{
		cache:          freecache.NewCache(cacheSize),
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		apiKey:         apiKey,
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

func (c *Client) Search(ctx context.Context, query string, pageSize int) (_ *SearchResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fooddb.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	cacheKey := fmt.Sprintf("search::%d::%s", pageSize, strings.ToLower(query))
	result := &SearchResult{}
	if c.fromCache(cacheKey, result) {
		return result, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(pageSize))

	var resp searchResponse
	if err := c.get(ctx, c.baseURL+"/foods/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	result.Query = query
	result.TotalHits = resp.TotalHits
	result.Foods = make([]Food, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		result.Foods = append(result.Foods, f.toFood())
	}

	c.toCache(cacheKey, result)
	return result, nil
}

func (c *Client) GetFood(ctx context.Context, fdcID int) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fooddb.getfood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("fdc_id", fdcID))

	cacheKey := fmt.Sprintf("food::%d", fdcID)
	food := &Food{}
	if c.fromCache(cacheKey, food) {
		return food, nil
	}

	var resp detailsResponse
	if err := c.get(ctx, fmt.Sprintf("%s/food/%d", c.baseURL, fdcID), &resp); err != nil {
		return nil, err
	}

	*food = resp.toFood()
	c.toCache(cacheKey, food)
	return food, nil
}

func (c *Client) get(ctx context.Context, requestURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	// kept out of the URL, which ends up in client errors and span attributes
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("food data central: unexpected status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read food data central response: %w", err)
	}

	if err := json.Unmarshal(respBytes, target); err != nil {
		return fmt.Errorf("unmarshal food data central response: %w", err)
	}

	return nil
}

func (c *Client) fromCache(key string, target any) bool {
	cached, err := c.cache.Get([]byte(key))
	if err != nil {
		c.metricsManager.CounterFoodCache.WithLabelValues("miss").Inc()
		return false
	}

	if err := json.Unmarshal(cached, target); err != nil {
		log.Errorf("failed to unmarshal cached food data [%s]: %s", key, err)
		c.metricsManager.CounterFoodCache.WithLabelValues("miss").Inc()
		return false
	}

	c.metricsManager.CounterFoodCache.WithLabelValues("hit").Inc()
	return true
}

func (c *Client) toCache(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal food data for cache [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), valueBytes, foodCacheExpire); err != nil {
		log.Errorf("failed to write food cache [%s]: %s", key, err)
	}
}
