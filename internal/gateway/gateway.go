// Package gateway adapts card operations to the Online Payments platform and
// normalizes every reply into a domain.Result.
package gateway

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
)

// Gateway is bound to one brand and one merchant. It is immutable after
// construction and safe for concurrent use.
type Gateway struct {
	brand  domain.BrandConfig
	creds  domain.Credentials
	test   bool
	client onlinepayments.PaymentsClient
	logger *slog.Logger
}

type Option func(*Gateway)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New builds a gateway around an existing transport client.
func New(brand domain.BrandConfig, creds domain.Credentials, test bool, client onlinepayments.PaymentsClient, opts ...Option) (*Gateway, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewMissingOptionError("client")
	}

	return newGateway(brand, creds, test, func(*slog.Logger) onlinepayments.PaymentsClient { return client }, opts), nil
}

// NewWithConfig builds the production transport client for the brand
// endpoint selected by test.
func NewWithConfig(brand domain.BrandConfig, creds domain.Credentials, test bool, cfg config.ClientConfig, opts ...Option) (*Gateway, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return newGateway(brand, creds, test, func(logger *slog.Logger) onlinepayments.PaymentsClient {
		return onlinepayments.NewClient(brand.Endpoint(test), creds, cfg, logger)
	}, opts), nil
}

// newGateway applies opts, then builds the client with the resulting logger.
func newGateway(
	brand domain.BrandConfig,
	creds domain.Credentials,
	test bool,
	buildClient func(*slog.Logger) onlinepayments.PaymentsClient,
	opts []Option,
) *Gateway {
	g := &Gateway{
		brand:  brand,
		creds:  creds,
		test:   test,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("brand", brand.Key, "test", test)
	g.client = buildClient(g.logger)

	return g
}

// FromConfig resolves the configured brand and builds a gateway for it.
func FromConfig(gw config.GatewayConfig, cfg config.ClientConfig, opts ...Option) (*Gateway, error) {
	brand, err := domain.LookupBrand(gw.Brand)
	if err != nil {
		return nil, err
	}

	creds := domain.Credentials{
		MerchantID: gw.Partner,
		APIKeyID:   gw.Login,
		APISecret:  gw.Password,
		Integrator: gw.Integrator,
	}

	return NewWithConfig(brand, creds, gw.Test, cfg, opts...)
}

func (g *Gateway) Brand() domain.BrandConfig {
	return g.brand
}

func (g *Gateway) Test() bool {
	return g.test
}

// Check reports whether the platform is currently callable. It fails while
// the client's circuit breaker is open.
func (g *Gateway) Check(ctx context.Context) error {
	checker, ok := g.client.(interface{ Check(context.Context) error })
	if !ok {
		return nil
	}
	return checker.Check(ctx)
}

// Purchase authorizes and captures in one step.
func (g *Gateway) Purchase(ctx context.Context, amount int64, card domain.Card, opts domain.Options) *domain.Result {
	req := buildCreatePayment(g.brand, amount, card, opts, onlinepayments.ModeSale)

	resp, err := g.client.CreatePayment(ctx, g.creds.MerchantID, req)
	if err != nil {
		return g.finish(domain.OperationPurchase, g.failure(err, purchaseApproved, ""))
	}

	view := createPaymentView(resp)
	return g.finish(domain.OperationPurchase, g.normalize(view, purchaseApproved, view.paymentID()))
}

// Authorize reserves funds without capturing them.
func (g *Gateway) Authorize(ctx context.Context, amount int64, card domain.Card, opts domain.Options) *domain.Result {
	req := buildCreatePayment(g.brand, amount, card, opts, onlinepayments.ModePreAuthorization)

	resp, err := g.client.CreatePayment(ctx, g.creds.MerchantID, req)
	if err != nil {
		return g.finish(domain.OperationAuthorize, g.failure(err, authorizeApproved, ""))
	}

	view := createPaymentView(resp)
	return g.finish(domain.OperationAuthorize, g.normalize(view, authorizeApproved, view.paymentID()))
}

// Capture settles a previous authorization.
func (g *Gateway) Capture(ctx context.Context, amount int64, authorization string, _ domain.Options) *domain.Result {
	resp, err := g.client.CapturePayment(ctx, g.creds.MerchantID, authorization, buildCapture(amount))
	if err != nil {
		return g.finish(domain.OperationCapture, g.failure(err, captureApproved, authorization))
	}

	return g.finish(domain.OperationCapture, g.normalize(captureView(resp), captureApproved, authorization))
}

// Refund returns money from a captured payment. The currency defaults to the
// brand currency.
func (g *Gateway) Refund(ctx context.Context, amount int64, authorization string, opts domain.Options) *domain.Result {
	resp, err := g.client.RefundPayment(ctx, g.creds.MerchantID, authorization, buildRefund(g.brand, amount, opts))
	if err != nil {
		return g.finish(domain.OperationRefund, g.failure(err, refundApproved, authorization))
	}

	return g.finish(domain.OperationRefund, g.normalize(refundView(resp), refundApproved, authorization))
}

// Void cancels an authorization that has not been captured.
func (g *Gateway) Void(ctx context.Context, authorization string, _ domain.Options) *domain.Result {
	resp, err := g.client.CancelPayment(ctx, g.creds.MerchantID, authorization, onlinepayments.CancelPaymentRequest{})
	if err != nil {
		return g.finish(domain.OperationVoid, g.failure(err, voidApproved, authorization))
	}

	return g.finish(domain.OperationVoid, g.normalize(cancelView(resp), voidApproved, authorization))
}

// Verify authorizes domain.VerifyAmount and voids it straight away. A failed
// authorization is returned as is. The void result always carries the
// authorization id, including when the void itself faults.
func (g *Gateway) Verify(ctx context.Context, card domain.Card, opts domain.Options) *domain.Result {
	key := onlinepayments.IdempotenceKeyFrom(ctx)

	auth := g.Authorize(withStepKey(ctx, key, "authorize"), domain.VerifyAmount, card, opts)
	if !auth.Success {
		return auth
	}

	result := g.Void(withStepKey(ctx, key, "void"), auth.Authorization, opts)
	if result.Authorization == "" {
		result.Authorization = auth.Authorization
	}
	return result
}

// withStepKey derives the idempotence key of one step of a composite call.
func withStepKey(ctx context.Context, key, step string) context.Context {
	if key == "" {
		return ctx
	}
	return onlinepayments.WithIdempotenceKey(ctx, key+"-"+step)
}

// failure normalizes a declined reply like any other response; everything
// else is a transport or client fault.
func (g *Gateway) failure(err error, accepted []string, authorization string) *domain.Result {
	view, ok := declinedView(err)
	if !ok {
		return g.fault(err)
	}
	if authorization == "" {
		authorization = view.paymentID()
	}
	return g.normalize(view, accepted, authorization)
}

func (g *Gateway) finish(op domain.Operation, result *domain.Result) *domain.Result {
	attrs := []any{
		"operation", op,
		"success", result.Success,
		"message", result.Message,
	}
	if result.Authorization != "" {
		attrs = append(attrs, "authorization", result.Authorization)
	}

	if result.Success {
		g.logger.Debug("gateway call completed", attrs...)
	} else {
		g.logger.Info("gateway call failed", append(attrs, "error_code", result.ErrorCode)...)
	}
	return result
}
