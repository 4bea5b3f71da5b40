package gateway

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/paradex-labs/paradex-go/pkg/account"
	"github.com/paradex-labs/paradex-go/pkg/types"
)

// SubmitOrder signs the order if needed and submits it. The session token is
// refreshed first when stale.
func (c *Client) SubmitOrder(ctx context.Context, acct *account.Account, order *types.Order) (*types.OrderResponse, error) {
	if err := c.EnsureAuthenticated(ctx, acct); err != nil {
		return nil, err
	}
	if order.Signature == "" {
		if _, err := acct.SignOrder(order); err != nil {
			return nil, err
		}
	}
	resp, err := c.authorized(ctx, acct).SetBody(order).Post("/orders")
	if err != nil {
		return nil, errors.Wrap(err, "submit order")
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	ack := new(types.OrderResponse)
	if err := json.Unmarshal(resp.Body(), ack); err != nil {
		return nil, errors.Wrap(types.ErrProtocol, err.Error())
	}
	c.logger.Info("order submitted",
		zap.String("market", order.Market),
		zap.String("order_id", ack.ID))
	return ack, nil
}

// ModifyOrder re-signs the order with the modify shape and replaces it on the
// venue. The order must carry its venue-assigned ID.
func (c *Client) ModifyOrder(ctx context.Context, acct *account.Account, order *types.Order) (*types.OrderResponse, error) {
	if order.ID == "" {
		return nil, errors.Wrap(types.ErrProtocol, "modify requires a venue-assigned order id")
	}
	if err := c.EnsureAuthenticated(ctx, acct); err != nil {
		return nil, err
	}
	if _, err := acct.SignOrder(order); err != nil {
		return nil, err
	}
	resp, err := c.authorized(ctx, acct).SetBody(order).Put("/orders/" + order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "modify order")
	}
	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}
	ack := new(types.OrderResponse)
	if err := json.Unmarshal(resp.Body(), ack); err != nil {
		return nil, errors.Wrap(types.ErrProtocol, err.Error())
	}
	return ack, nil
}

// CancelOrder cancels a resting order by its venue-assigned ID.
func (c *Client) CancelOrder(ctx context.Context, acct *account.Account, orderID string) error {
	if orderID == "" {
		return errors.Wrap(types.ErrProtocol, "cancel requires an order id")
	}
	if err := c.EnsureAuthenticated(ctx, acct); err != nil {
		return err
	}
	resp, err := c.authorized(ctx, acct).Delete("/orders/" + orderID)
	if err != nil {
		return errors.Wrap(err, "cancel order")
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}

// SubmitBlockTrade signs and submits a block trade initiation.
func (c *Client) SubmitBlockTrade(ctx context.Context, acct *account.Account, request *types.BlockTradeRequest) error {
	if err := c.EnsureAuthenticated(ctx, acct); err != nil {
		return err
	}
	if request.Signature == "" {
		if _, err := acct.SignBlockTrade(request); err != nil {
			return err
		}
	}
	resp, err := c.authorized(ctx, acct).SetBody(request).Post("/block-trades")
	if err != nil {
		return errors.Wrap(err, "submit block trade")
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}

// SubmitBlockOffer signs and submits an offer against an open block trade.
func (c *Client) SubmitBlockOffer(ctx context.Context, acct *account.Account, blockID string, request *types.BlockOfferRequest) error {
	if blockID == "" {
		return errors.Wrap(types.ErrProtocol, "offer requires a block trade id")
	}
	if err := c.EnsureAuthenticated(ctx, acct); err != nil {
		return err
	}
	if request.Signature == "" {
		if _, err := acct.SignBlockOffer(request); err != nil {
			return err
		}
	}
	resp, err := c.authorized(ctx, acct).SetBody(request).Post("/block-trades/" + blockID + "/offers")
	if err != nil {
		return errors.Wrap(err, "submit block offer")
	}
	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}
