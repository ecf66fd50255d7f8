package banking

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fidor/account"
	"github.com/kbukum/fidor/card"
	"github.com/kbukum/fidor/config"
	apperrors "github.com/kbukum/fidor/errors"
	"github.com/kbukum/fidor/httpclient"
	"github.com/kbukum/fidor/httpclient/rest"
	"github.com/kbukum/fidor/logger"
	"github.com/kbukum/fidor/resource"
	"github.com/kbukum/fidor/transfer"
)

// Client accesses the banking API on behalf of one access token.
type Client struct {
	cfg config.Config
	svc *resource.Service
	log *logger.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	log      *logger.Logger
	httpOpts []httpclient.Option
}

// WithLogger overrides the logger built from the configuration.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpOpts = append(o.httpOpts, httpclient.WithHTTPClient(hc)) }
}

// WithTracerProvider sets the provider request spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.httpOpts = append(o.httpOpts, httpclient.WithTracerProvider(tp)) }
}

// New creates a client. The configuration is defaulted and validated.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.InvalidConfig(err.Error()).WithCause(err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.New(&cfg.Logging, "fidor")
	}

	httpOpts := append([]httpclient.Option{httpclient.WithLogger(o.log)}, o.httpOpts...)
	rc, err := rest.New(cfg.HTTPClient(), httpOpts...)
	if err != nil {
		return nil, apperrors.InvalidConfig(err.Error()).WithCause(err)
	}

	return &Client{
		cfg: cfg,
		svc: resource.NewService(rc, o.log),
		log: o.log,
	}, nil
}

// Config returns the effective configuration.
func (c *Client) Config() config.Config { return c.cfg }

// Service exposes the record service for resources this package does not
// wrap.
func (c *Client) Service() *resource.Service { return c.svc }

// Save creates or updates any record. See resource.Service.Save. Cards and
// accounts are read-only and are refused without a request.
func (c *Client) Save(ctx context.Context, m resource.Model) resource.Result {
	return c.svc.Save(ctx, m)
}

// BuildInternalTransfer returns an unsaved Internal transfer.
func (c *Client) BuildInternalTransfer(a transfer.InternalAttrs) *transfer.Internal {
	return transfer.NewInternal(a)
}

// BuildSEPATransfer returns an unsaved SEPA transfer.
func (c *Client) BuildSEPATransfer(a transfer.SEPAAttrs) *transfer.SEPA {
	return transfer.NewSEPA(a)
}

// BuildFPSTransfer returns an unsaved FPS transfer.
func (c *Client) BuildFPSTransfer(a transfer.FPSAttrs) *transfer.FPS {
	return transfer.NewFPS(a)
}

// InternalTransfers lists Internal transfers.
func (c *Client) InternalTransfers(ctx context.Context, opts ...resource.ListOption) (*resource.Collection[*transfer.Internal], error) {
	return resource.All[transfer.Internal](ctx, c.svc, opts...)
}

// InternalTransfer loads one Internal transfer.
func (c *Client) InternalTransfer(ctx context.Context, id int64) (*transfer.Internal, error) {
	return resource.Find[transfer.Internal](ctx, c.svc, id)
}

// SEPATransfers lists SEPA transfers.
func (c *Client) SEPATransfers(ctx context.Context, opts ...resource.ListOption) (*resource.Collection[*transfer.SEPA], error) {
	return resource.All[transfer.SEPA](ctx, c.svc, opts...)
}

// SEPATransfer loads one SEPA transfer.
func (c *Client) SEPATransfer(ctx context.Context, id int64) (*transfer.SEPA, error) {
	return resource.Find[transfer.SEPA](ctx, c.svc, id)
}

// FPSTransfers lists FPS transfers.
func (c *Client) FPSTransfers(ctx context.Context, opts ...resource.ListOption) (*resource.Collection[*transfer.FPS], error) {
	return resource.All[transfer.FPS](ctx, c.svc, opts...)
}

// FPSTransfer loads one FPS transfer.
func (c *Client) FPSTransfer(ctx context.Context, id int64) (*transfer.FPS, error) {
	return resource.Find[transfer.FPS](ctx, c.svc, id)
}

// Cards lists the customer's cards.
func (c *Client) Cards(ctx context.Context, opts ...resource.ListOption) (*resource.Collection[*card.Card], error) {
	return resource.All[card.Card](ctx, c.svc, opts...)
}

// Card loads one card.
func (c *Client) Card(ctx context.Context, id int64) (*card.Card, error) {
	return resource.Find[card.Card](ctx, c.svc, id)
}

// Accounts lists the customer's accounts.
func (c *Client) Accounts(ctx context.Context, opts ...resource.ListOption) (*resource.Collection[*account.Account], error) {
	return resource.All[account.Account](ctx, c.svc, opts...)
}

// Account loads one account.
func (c *Client) Account(ctx context.Context, id int64) (*account.Account, error) {
	return resource.Find[account.Account](ctx, c.svc, id)
}
