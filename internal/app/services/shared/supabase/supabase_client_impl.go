package supabase

import (
	"context"
	"fmt"
	"io"
	"monteluz-service/internal/app/config"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	supabaseClientInstance SupabaseClient
	onceSupabaseClient     sync.Once
)

type supabaseClient struct {
	BaseUrl string
	APIKey  string
	Log     *zap.Logger
}

func NewSupabaseClient(supabaseConfig config.Supabase, logger *zap.Logger) SupabaseClient {
	onceSupabaseClient.Do(func() {
		client := &supabaseClient{
			BaseUrl: supabaseConfig.BaseUrl + constvars.SupabaseRestPath,
			APIKey:  supabaseConfig.APIKey,
			Log:     logger,
		}
		supabaseClientInstance = client
	})
	return supabaseClientInstance
}

func (c *supabaseClient) Select(ctx context.Context, resource, filterField, filterValue string, opts *QueryOptions) ([]map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	queryURL := c.buildURL(resource, filterField, filterValue, opts)
	c.Log.Info("supabaseClient.Select called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingSupabaseUrlKey, queryURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, queryURL, nil)
	if err != nil {
		c.Log.Error("supabaseClient.Select error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAPIKey, c.APIKey)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("supabaseClient.Select error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			bodyBytes = nil
		}
		supabaseErr := fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
		c.Log.Error("supabaseClient.Select supabase error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(supabaseErr),
		)
		return nil, exceptions.ErrGetSupabaseResource(supabaseErr, resource)
	}

	var rows []map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&rows)
	if err != nil {
		c.Log.Error("supabaseClient.Select error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}

	c.Log.Info("supabaseClient.Select succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.Int(constvars.LoggingRowCountKey, len(rows)),
	)
	return rows, nil
}

func (c *supabaseClient) buildURL(resource, filterField, filterValue string, opts *QueryOptions) string {
	projection := constvars.QuerySelectAll
	limit := 0
	if opts != nil {
		if opts.Select != "" {
			projection = opts.Select
		}
		limit = opts.Limit
	}

	queryURL := fmt.Sprintf("%s/%s?%s=%s&%s=%s",
		c.BaseUrl,
		resource,
		filterField,
		url.QueryEscape(fmt.Sprintf(constvars.QueryEqualityFormat, filterValue)),
		constvars.QueryParamSelect,
		url.QueryEscape(projection),
	)
	if limit > 0 {
		queryURL += fmt.Sprintf("&%s=%d", constvars.QueryParamLimit, limit)
	}
	return queryURL
}
