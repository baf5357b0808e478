package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// How long a single Complete/Cancel may hold the per-order lock.
const orderLockTTL = 30 * time.Second

// OrderService runs the order lifecycle: PENDING to SENDING on Complete,
// PENDING to CANCELLED on Cancel, nothing out of either terminal state.
type OrderService struct {
	orders OrderStore
	locker OrderLocker
	events OrderEvents
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orders OrderStore, locker OrderLocker, events OrderEvents) *OrderService {
	return &OrderService{
		orders: orders,
		locker: locker,
		events: events,
		logger: util.GetLogger(),
	}
}

// ListPending returns the seller's open orders
func (s *OrderService) ListPending(ctx context.Context, sellerID string) ([]models.Order, error) {
	return s.orders.ListPendingOrdersBySeller(ctx, sellerID)
}

// Get returns one order with listing and buyer, if it is against this
// seller's listing.
func (s *OrderService) Get(ctx context.Context, sellerID, orderID string) (*models.OrderDetail, error) {
	detail, err := s.orders.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if detail.Listing.SellerID != sellerID {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrForbidden)
	}
	return detail, nil
}

// Complete transitions a PENDING order to SENDING. The order status,
// listing SOLD status, buyer notification and sale record commit in one
// transaction; a second Complete on the same order is rejected and
// never records a second sale.
func (s *OrderService) Complete(ctx context.Context, sellerID, orderID string) (*models.OrderDetail, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Complete")
	defer span.End()

	release, err := s.lock(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := s.Get(ctx, sellerID, orderID); err != nil {
		return nil, err
	}

	detail, sale, err := s.orders.CompleteOrderTx(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotPending) {
			util.OrderTransitionsRejected.WithLabelValues("not_pending").Inc()
		}
		return nil, err
	}

	util.OrdersCompletedTotal.Inc()
	s.logger.Info("Order completed",
		zap.String("order_id", orderID),
		zap.String("listing_id", detail.Listing.ID),
		zap.Int64("price", sale.Price))

	// Fanout is best-effort: the transition is already durable.
	event := &models.OrderCompletedEvent{
		BaseEvent: newBaseEvent(models.EventTypeOrderCompleted),
		OrderID:   detail.Order.ID,
		ListingID: detail.Listing.ID,
		SellerID:  detail.Listing.SellerID,
		BuyerID:   detail.Order.BuyerID,
		Price:     sale.Price,
	}
	if err := s.events.PublishOrderCompleted(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCompleted event", zap.Error(err))
	}
	s.publishNotification(ctx, detail)

	return detail, nil
}

// Cancel transitions a PENDING order to CANCELLED. The listing keeps its
// status so it can be sold again.
func (s *OrderService) Cancel(ctx context.Context, sellerID, orderID string) (*models.OrderDetail, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Cancel")
	defer span.End()

	release, err := s.lock(ctx, orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := s.Get(ctx, sellerID, orderID); err != nil {
		return nil, err
	}

	detail, err := s.orders.CancelOrderTx(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotPending) {
			util.OrderTransitionsRejected.WithLabelValues("not_pending").Inc()
		}
		return nil, err
	}

	util.OrdersCancelledTotal.Inc()
	s.logger.Info("Order cancelled",
		zap.String("order_id", orderID),
		zap.String("listing_id", detail.Listing.ID))

	event := &models.OrderCancelledEvent{
		BaseEvent: newBaseEvent(models.EventTypeOrderCancelled),
		OrderID:   detail.Order.ID,
		ListingID: detail.Listing.ID,
		SellerID:  detail.Listing.SellerID,
		BuyerID:   detail.Order.BuyerID,
	}
	if err := s.events.PublishOrderCancelled(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCancelled event", zap.Error(err))
	}
	s.publishNotification(ctx, detail)

	return detail, nil
}

func (s *OrderService) lock(ctx context.Context, orderID string) (func(), error) {
	ok, err := s.locker.AcquireOrderLock(ctx, orderID, orderLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}
	if !ok {
		util.OrderTransitionsRejected.WithLabelValues("in_flight").Inc()
		return nil, fmt.Errorf("order %s: %w", orderID, ErrActionInFlight)
	}
	return func() {
		if err := s.locker.ReleaseOrderLock(ctx, orderID); err != nil {
			s.logger.Error("Failed to release order lock",
				zap.String("order_id", orderID), zap.Error(err))
		}
	}, nil
}

// publishNotification mirrors the stored buyer notification onto the
// realtime channel. The row itself was written inside the transaction.
func (s *OrderService) publishNotification(ctx context.Context, detail *models.OrderDetail) {
	event := &models.NotificationCreatedEvent{
		BaseEvent:   newBaseEvent(models.EventTypeNotificationCreated),
		RecipientID: detail.Order.BuyerID,
		ListingID:   detail.Listing.ID,
	}
	if err := s.events.PublishNotificationCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish NotificationCreated event", zap.Error(err))
	}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}
