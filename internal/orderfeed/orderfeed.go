package orderfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/referralmart/internal/config"
	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingOrders sync.Map

// SettledOrder is one paid order reported by the payment gateway.
type SettledOrder struct {
	Order  string  `json:"order"`
	UserID int     `json:"user_id"`
	Amount float64 `json:"amount"`
}

type CommissionService interface {
	Distribute(ctx context.Context, orderID string, purchaserID int, orderAmount float64) (*domain.CommissionTransaction, error)
}
type PointsService interface {
	AwardForOrder(ctx context.Context, userID int, orderID string, orderAmount float64) (int, error)
}

// Service pulls settled orders from the payment gateway and drives the
// commission and points engines for each. The engines are idempotent per
// order, so redelivery across polls is harmless.
type Service struct {
	url               string
	commissionService CommissionService
	pointsService     PointsService
	client            clients.HTTPClientI
	limit             uint32
	workerPool        WorkerPoolI
	updateInterval    time.Duration
}

func New(cfg *config.Config, commissionService CommissionService, pointsService PointsService, client clients.HTTPClientI) *Service {
	return &Service{
		url:               cfg.GatewayAddress,
		commissionService: commissionService,
		pointsService:     pointsService,
		client:            client,
		limit:             1000,
		workerPool:        NewWorkerPool(10),
		updateInterval:    time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Order feed service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping order feed")
			return
		case <-ticker.C:
			s.processSettled(ctx)
		}
	}
}

func (s *Service) processSettled(ctx context.Context) {
	orders, err := s.fetchSettled(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch settled orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.Order, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.Order)
				return s.handleOrder(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.Order)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing settled orders", zap.Error(err))
	}
}

func (s *Service) fetchSettled(ctx context.Context) ([]SettledOrder, error) {
	url := s.url + "/api/orders/settled?limit=" + strconv.FormatUint(uint64(atomic.LoadUint32(&s.limit)), 10)

	var statusCode int
	var respBody []byte
	var respHeaders http.Header
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, fmt.Errorf("failed to fetch settled orders after %d retries: %w", maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.waitForRateLimit(respHeaders, attempt)
				continue

			case http.StatusNoContent:
				return nil, nil

			case http.StatusOK:
				var orders []SettledOrder
				if err := json.Unmarshal(respBody, &orders); err != nil {
					return nil, fmt.Errorf("failed to parse settled orders: %w", err)
				}
				return orders, nil

			default:
				zap.L().Error("Unexpected status code from payment gateway", zap.Int("status", statusCode))
				return nil, errors.New("unexpected status code")
			}
		}
	}
	return nil, nil
}

func (s *Service) handleOrder(ctx context.Context, order SettledOrder) error {
	if _, err := s.commissionService.Distribute(ctx, order.Order, order.UserID, order.Amount); err != nil {
		return fmt.Errorf("failed to distribute commission for order %s: %w", order.Order, err)
	}

	points, err := s.pointsService.AwardForOrder(ctx, order.UserID, order.Order, order.Amount)
	if err != nil {
		return fmt.Errorf("failed to award points for order %s: %w", order.Order, err)
	}

	zap.L().Info("Settled order processed",
		zap.String("orderNumber", order.Order),
		zap.Int("userID", order.UserID),
		zap.Int("points", points))
	return nil
}

func (s *Service) waitForRateLimit(respHeaders http.Header, attempt int) {
	retryAfter := retryInterval * time.Duration(attempt)
	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn("Rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
	time.Sleep(retryAfter)
}
