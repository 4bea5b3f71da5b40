// Package gateway is the REST collaborator of the signing core: it fetches
// the system config, performs idempotent onboarding, exchanges signed auth
// headers for a session token, tracks token freshness and submits signed
// orders and block trades.
package gateway

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/paradex-labs/paradex-go/pkg/account"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

const (
	requestTimeout    = 10 * time.Second
	requestsPerSecond = 10
	requestBurst      = 20
)

// Client is a venue REST client. It is safe for concurrent use.
type Client struct {
	env       Environment
	http      *resty.Client
	limiter   *rate.Limiter
	logger    *zap.Logger
	lifecycle *AuthLifecycle
}

// NewClient builds a client for an environment. A nil logger disables
// logging.
func NewClient(env Environment, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	http := resty.New().
		SetBaseURL(env.APIURL()).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")
	return &Client{
		env:       env,
		http:      http,
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:    log,
		lifecycle: NewAuthLifecycle(),
	}
}

// SetBaseURL overrides the REST base URL, for tests and private gateways.
func (c *Client) SetBaseURL(url string) *Client {
	c.http.SetBaseURL(url)
	return c
}

// Lifecycle exposes the authentication lifecycle tracker.
func (c *Client) Lifecycle() *AuthLifecycle {
	return c.lifecycle
}

// FetchSystemConfig retrieves the venue's system config. It must be called
// before any account can be constructed.
func (c *Client) FetchSystemConfig(ctx context.Context) (*types.SystemConfig, error) {
	resp, err := c.request(ctx).Get("/system/config")
	if err != nil {
		return nil, errors.Wrap(err, "fetch system config")
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	cfg := new(types.SystemConfig)
	if err := json.Unmarshal(resp.Body(), cfg); err != nil {
		return nil, errors.Wrap(types.ErrConfigFormat, err.Error())
	}
	if cfg.StarknetChainID == "" || cfg.ParaclearAccountHash == "" || cfg.ParaclearAccountProxyHash == "" {
		return nil, errors.Wrap(types.ErrConfigFormat, "system config missing chain id or class hashes")
	}
	c.logger.Debug("fetched system config",
		zap.String("starknet_chain_id", cfg.StarknetChainID),
		zap.String("l1_chain_id", cfg.L1ChainID))
	return cfg, nil
}

// Onboard registers the account with the venue. Onboarding is idempotent: an
// already-onboarded response is treated as success.
func (c *Client) Onboard(ctx context.Context, acct *account.Account) error {
	if acct == nil {
		return errors.Wrap(types.ErrAccountState, "nil account")
	}
	headers, err := acct.OnboardingHeaders()
	if err != nil {
		return err
	}
	body := types.OnboardingRequest{PublicKey: acct.L2PublicKeyHex()}
	resp, err := c.request(ctx).SetHeaders(headerMap(headers)).SetBody(body).Post("/onboarding")
	if err != nil {
		return errors.Wrap(err, "onboarding request")
	}
	switch {
	case resp.IsSuccess():
		c.logger.Info("account onboarded", zap.String("l2_address", acct.L2AddressHex()))
		return nil
	case alreadyOnboarded(resp):
		c.logger.Debug("account already onboarded", zap.String("l2_address", acct.L2AddressHex()))
		return nil
	}
	return apiError(resp)
}

// Authenticate exchanges signed auth headers for a session token, stores the
// token on the account and records the authentication time.
func (c *Client) Authenticate(ctx context.Context, acct *account.Account) (string, error) {
	if acct == nil {
		return "", errors.Wrap(types.ErrAccountState, "nil account")
	}
	headers, err := acct.AuthHeaders()
	if err != nil {
		return "", err
	}
	resp, err := c.request(ctx).SetHeaders(headerMap(headers)).Post("/auth")
	if err != nil {
		return "", errors.Wrap(err, "auth request")
	}
	if !resp.IsSuccess() {
		return "", apiError(resp)
	}
	var auth types.AuthResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return "", errors.Wrap(types.ErrProtocol, err.Error())
	}
	if auth.JWTToken == "" {
		return "", errors.Wrap(types.ErrProtocol, "auth response carried no token")
	}
	acct.SetSessionToken(auth.JWTToken)
	c.lifecycle.MarkAuthenticated()
	c.logger.Debug("authenticated", zap.String("l2_address", acct.L2AddressHex()))
	return auth.JWTToken, nil
}

// EnsureAuthenticated re-authenticates only when the last authentication has
// gone stale.
func (c *Client) EnsureAuthenticated(ctx context.Context, acct *account.Account) error {
	if !c.lifecycle.NeedsRefresh() {
		return nil
	}
	_, err := c.Authenticate(ctx, acct)
	return err
}

func (c *Client) request(ctx context.Context) *resty.Request {
	if err := c.limiter.Wait(ctx); err != nil {
		// Wait only fails on context cancellation; let the request
		// surface it.
		c.logger.Debug("rate limiter wait aborted", zap.Error(err))
	}
	return c.http.R().SetContext(ctx)
}

func (c *Client) authorized(ctx context.Context, acct *account.Account) *resty.Request {
	return c.request(ctx).SetHeader("Authorization", "Bearer "+acct.SessionToken())
}

func headerMap(headers []types.Header) map[string]string {
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		m[h.Key] = h.Value
	}
	return m
}

func alreadyOnboarded(resp *resty.Response) bool {
	if resp.StatusCode() == 409 {
		return true
	}
	return resp.StatusCode() == 400 && strings.Contains(strings.ToLower(string(resp.Body())), "already")
}

func apiError(resp *resty.Response) error {
	return &types.APIError{Status: resp.StatusCode(), Message: strings.TrimSpace(string(resp.Body()))}
}
