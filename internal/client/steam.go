package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"steam/inventory/internal/config"
	"steam/inventory/internal/domain"
	"steam/inventory/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type SteamClient interface {
	GetInventory(ctx context.Context, ownerID string, appID domain.AppID, contextID, count int) (*domain.Inventory, error)
	Close() error
}

type steamClient struct {
	rl            ratelimit.Limiter
	baseURL       string
	language      string
	httpClient    *resty.Client
	proxySupplier proxy.Supplier
	logger        *log.Entry
}

// inventoryResponse keeps Descriptions as a pointer so an absent key can be told
// apart from an empty list.
type inventoryResponse struct {
	Assets       []domain.Asset        `json:"assets"`
	Descriptions *[]domain.Description `json:"descriptions"`
	Message      string                `json:"message"`
	Error        string                `json:"error"`
}

// NewSteamClient builds the inventory client. A nil logger falls back to the
// standard logger.
func NewSteamClient(cfg config.SteamConfig, proxySupplier proxy.Supplier, logger *log.Entry) SteamClient {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			logger.Infof("🔗 Using initial proxy: %s", proxyURL)
		}
	}

	return &steamClient{
		rl:            ratelimit.New(cfg.MaxRequestsPerSecond),
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		language:      cfg.Language,
		httpClient:    client,
		proxySupplier: proxySupplier,
		logger:        logger,
	}
}

// GetInventory requests one page of up to count entries for the owner's
// inventory in appID/contextID. The collections are returned as sent.
func (c *steamClient) GetInventory(ctx context.Context, ownerID string, appID domain.AppID, contextID, count int) (*domain.Inventory, error) {
	url := fmt.Sprintf("%s/inventory/%s/%s/%d", c.baseURL, ownerID, appID, contextID)

	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("l", c.language).
		SetQueryParam("count", strconv.Itoa(count)).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, &TransportError{URL: url, Err: err}
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		if resp.StatusCode() == http.StatusTooManyRequests {
			c.rotateProxy()
		}
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	var body inventoryResponse
	if err := json.Unmarshal([]byte(resp.String()), &body); err != nil {
		return nil, &SchemaError{URL: url, Err: err}
	}

	if body.Descriptions == nil {
		message := body.Message
		if message == "" {
			message = body.Error
		}
		if message == "" {
			message = "unknown error"
		}
		return nil, &SchemaError{URL: url, Message: message}
	}

	assets := body.Assets
	if assets == nil {
		assets = []domain.Asset{}
	}

	c.logger.Debugf("Fetched %d assets and %d descriptions for app %s", len(assets), len(*body.Descriptions), appID)
	return &domain.Inventory{
		Assets:       assets,
		Descriptions: *body.Descriptions,
	}, nil
}

func (c *steamClient) rotateProxy() {
	if c.proxySupplier == nil || c.proxySupplier.Len() < 2 {
		return
	}
	if next := c.proxySupplier.Get(); next != "" {
		c.logger.Warnf("🚫 Rate limited, switching to proxy %s for the next request", next)
		c.httpClient.SetProxy(next)
	}
}

func (c *steamClient) Close() error {
	return c.httpClient.Close()
}
