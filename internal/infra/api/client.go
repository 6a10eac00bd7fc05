// Package api implements the remote storefront gateway client. It is the
// only place that talks HTTP: every response is normalized here into decoded
// entities or typed errors, so use cases never see a raw response.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"medimart/config"
	"medimart/internal/appcontext"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

// Client is the concrete gateway for every endpoint family.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// Compile-time checks that Client satisfies every gateway contract.
var (
	_ service.AuthAPI     = (*Client)(nil)
	_ service.CustomerAPI = (*Client)(nil)
	_ service.CartAPI     = (*Client)(nil)
	_ service.OrderAPI    = (*Client)(nil)
	_ service.CatalogAPI  = (*Client)(nil)
	_ service.FavoriteAPI = (*Client)(nil)
	_ service.PaymentAPI  = (*Client)(nil)
	_ service.VisionAPI   = (*Client)(nil)
)

// Params holds dependencies for the gateway client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the gateway client from configuration.
func New(params Params) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(params.Config.API.BaseURL, "/")).
		SetTimeout(params.Config.API.RequestTimeout).
		SetHeader("Accept", "application/json")

	if params.Config.API.UserAgent != "" {
		httpClient.SetHeader("User-Agent", params.Config.API.UserAgent)
	}

	return &Client{
		http:   httpClient,
		logger: params.Logger,
	}
}

// NewWithHTTP wraps a preconfigured resty client. Used by tests.
func NewWithHTTP(httpClient *resty.Client, logger *slog.Logger) *Client {
	return &Client{http: httpClient, logger: logger}
}

// Interface constructors for Fx wiring.

// NewAuthAPI exposes the client as the auth endpoint family.
func NewAuthAPI(c *Client) service.AuthAPI { return c }

// NewCustomerAPI exposes the client as the customer endpoint family.
func NewCustomerAPI(c *Client) service.CustomerAPI { return c }

// NewCartAPI exposes the client as the cart endpoint family.
func NewCartAPI(c *Client) service.CartAPI { return c }

// NewOrderAPI exposes the client as the order endpoint family.
func NewOrderAPI(c *Client) service.OrderAPI { return c }

// NewCatalogAPI exposes the client as the product/review endpoint family.
func NewCatalogAPI(c *Client) service.CatalogAPI { return c }

// NewFavoriteAPI exposes the client as the favorites endpoint family.
func NewFavoriteAPI(c *Client) service.FavoriteAPI { return c }

// NewPaymentAPI exposes the client as the payment endpoint family.
func NewPaymentAPI(c *Client) service.PaymentAPI { return c }

// NewVisionAPI exposes the client as the AI search endpoint family.
func NewVisionAPI(c *Client) service.VisionAPI { return c }

// log returns an operation-scoped logger when the context carries one.
func (c *Client) log(ctx context.Context) *slog.Logger {
	return appcontext.GetLoggerOrDefault(ctx, c.logger)
}

// request builds an outbound request with correlation ID and, when a token
// is supplied, a bearer Authorization header.
func (c *Client) request(ctx context.Context, token string) *resty.Request {
	ctx, requestID := appcontext.EnsureRequestID(ctx)

	req := c.http.R().
		SetContext(ctx).
		SetHeader(appcontext.HeaderXRequestID, requestID)

	if token != "" {
		req.SetAuthToken(token)
	}

	return req
}

// errorEnvelope is the JSON shape servers use for non-2xx bodies.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// decode normalizes a completed exchange. Transport failures, JSON error
// bodies, non-JSON bodies and undecodable success bodies each map to a
// distinct error; callers only ever branch on those types.
func (c *Client) decode(ctx context.Context, resp *resty.Response, err error, out any) error {
	if err != nil {
		c.log(ctx).Warn("Request failed before a response arrived", slog.Any("error", err))

		return domainerrors.ErrNetworkFailure.WrapMessage(err.Error())
	}

	body := resp.Body()

	if !resp.IsSuccess() {
		var envelope errorEnvelope
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr != nil {
			c.log(ctx).Warn("Server returned a non-JSON error body",
				slog.Int("status", resp.StatusCode()),
				slog.String("url", resp.Request.URL))

			return domainerrors.ErrNonJSONResponse.WrapMessage(resp.Status())
		}

		message := envelope.Message
		if message == "" {
			message = envelope.Error
		}

		return domainerrors.NewServerError(resp.StatusCode(), message)
	}

	if out == nil {
		return nil
	}

	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		c.log(ctx).Warn("Server returned an undecodable success body",
			slog.Int("status", resp.StatusCode()),
			slog.String("url", resp.Request.URL),
			slog.Any("error", jsonErr))

		return domainerrors.ErrNonJSONResponse.WrapMessage("decode response body")
	}

	return nil
}
