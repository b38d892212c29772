package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// BulkConfirmOrdersCommandHandler confirms every Pending order among the
// requested ids.
//
// The sweep is deliberately not atomic: each order is confirmed in its own
// transaction, so a committed confirmation is never rolled back by a later one.
// Missing and already confirmed orders are skipped. A storage error stops the
// sweep and is returned; confirmations committed before it stay in place.
type BulkConfirmOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewBulkConfirmOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) BulkConfirmOrdersCommandHandler {
	return BulkConfirmOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "bulk-confirm-orders"),
	}
}

// Handle returns the number of orders actually moved to Confirmed.
func (h BulkConfirmOrdersCommandHandler) Handle(ctx context.Context, cmd BulkConfirmOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	candidates, err := h.pendingCandidates(ctx, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	confirmed := 0
	for _, id := range candidates {
		ok, err := h.confirmOne(ctx, id)
		if err != nil {
			h.logger.ErrorContext(ctx, "bulk confirm aborted",
				"order_id", id.String(), "confirmed", confirmed, "error", err)
			return confirmed, err
		}
		if ok {
			confirmed++
		}
	}

	h.logger.InfoContext(ctx, "bulk confirm finished",
		"requested", len(cmd.OrderIDs()), "candidates", len(candidates), "confirmed", confirmed)

	return confirmed, nil
}

// pendingCandidates reads the requested orders once and keeps the Pending ones
// in request order.
func (h BulkConfirmOrdersCommandHandler) pendingCandidates(ctx context.Context, ids []kernel.UUID) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	pending := make(map[kernel.UUID]bool, len(orders))
	for _, o := range orders {
		if o.Status() == order.Pending {
			pending[o.ID()] = true
		}
	}

	candidates := make([]kernel.UUID, 0, len(pending))
	for _, id := range ids {
		if pending[id] {
			candidates = append(candidates, id)
		}
	}
	return candidates, nil
}

// confirmOne reports false when the order stopped being Pending after it was read.
func (h BulkConfirmOrdersCommandHandler) confirmOne(ctx context.Context, id kernel.UUID) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateStatus(ctx, id, order.Pending, order.Confirmed, nil)
	if err != nil {
		return false, err
	}
	if !updated {
		return false, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
