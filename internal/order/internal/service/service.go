// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/event/producer"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	"github.com/ecodeclub/takeout/internal/pkg/sngenerator"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrShoppingCartEmpty = errors.New("购物车为空, 不能下单")
	// ErrAddressNotFound 直接复用地址模块的错误
	ErrAddressNotFound = address.ErrAddressNotFound
)

const (
	userCancelReason     = "用户取消"
	paymentTimeoutReason = "支付超时，自动取消"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// SubmitOrder 提交订单。收货人信息从地址簿拷贝快照, 明细从购物车拷贝快照,
	// 订单、明细落库和清空购物车在同一事务内完成
	SubmitOrder(ctx context.Context, uid, addressID int64, remark string) (domain.Order, error)
	// MarkOrderPaid 支付成功回调, 待付款 -> 待接单
	MarkOrderPaid(ctx context.Context, sn string) error
	// UserCancelOrder 用户取消, 商家接单之后不允许
	UserCancelOrder(ctx context.Context, uid, id int64) error
	// RepeatOrder 再来一单, 把历史订单的明细重新放回购物车
	RepeatOrder(ctx context.Context, uid, id int64) error
	RemindOrder(ctx context.Context, uid, id int64) error
	ListOrders(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	OrderDetail(ctx context.Context, uid, id int64) (domain.Order, error)

	SearchOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, int64, error)
	AdminOrderDetail(ctx context.Context, id int64) (domain.Order, error)
	Statistics(ctx context.Context) (domain.OrderStatistics, error)
	ConfirmOrder(ctx context.Context, id int64) error
	RejectOrder(ctx context.Context, id int64, reason string) error
	CancelOrder(ctx context.Context, id int64, reason string) error
	DeliverOrder(ctx context.Context, id int64) error
	CompleteOrder(ctx context.Context, id int64) error

	// ListTimeoutOrders 捞取下单时间早于 orderedBefore 且仍停留在 status 的订单
	ListTimeoutOrders(ctx context.Context, status domain.OrderStatus, orderedBefore int64, offset, limit int) ([]domain.Order, error)
	// CancelTimeoutOrder 支付超时自动取消, 定时任务调用
	CancelTimeoutOrder(ctx context.Context, order domain.Order) error
	// CompleteTimeoutOrder 长时间停留在派送中的订单自动完成, 定时任务调用
	CompleteTimeoutOrder(ctx context.Context, order domain.Order) error
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	addressSvc address.Service,
	snGen *sngenerator.Generator,
	statusProducer producer.OrderStatusEventProducer,
	reminderProducer producer.ReminderEventProducer) Service {
	return &service{
		repo:             repo,
		cartSvc:          cartSvc,
		addressSvc:       addressSvc,
		snGen:            snGen,
		statusProducer:   statusProducer,
		reminderProducer: reminderProducer,
		logger:           elog.DefaultLogger,
	}
}

type service struct {
	repo             repository.OrderRepository
	cartSvc          cart.Service
	addressSvc       address.Service
	snGen            *sngenerator.Generator
	statusProducer   producer.OrderStatusEventProducer
	reminderProducer producer.ReminderEventProducer
	logger           *elog.Component
}

func (s *service) SubmitOrder(ctx context.Context, uid, addressID int64, remark string) (domain.Order, error) {
	addr, err := s.addressSvc.Detail(ctx, uid, addressID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询收货地址失败: %w", err)
	}
	items, err := s.cartSvc.ListItems(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询购物车失败: %w", err)
	}
	if len(items) == 0 {
		return domain.Order{}, ErrShoppingCartEmpty
	}
	var amount int64
	for _, item := range items {
		amount += item.Price * item.Quantity
	}
	order := domain.Order{
		SN:        s.snGen.Generate(uid),
		UID:       uid,
		Consignee: addr.Consignee,
		Phone:     addr.Phone,
		Address:   addr.Full(),
		Amount:    amount,
		Status:    domain.StatusPendingPayment,
		PayStatus: domain.PayStatusUnpaid,
		OrderTime: time.Now().UnixMilli(),
		Remark:    remark,
		Items: slice.Map(items, func(idx int, src cart.CartItem) domain.OrderItem {
			return domain.OrderItem{
				DishID:    src.DishID,
				SetmealID: src.SetmealID,
				Name:      src.Name,
				Image:     src.Image,
				Flavor:    src.Flavor,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
	}
	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	s.produceStatusEvent(ctx, created)
	return created, nil
}

func (s *service) MarkOrderPaid(ctx context.Context, sn string) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	if err != nil {
		return fmt.Errorf("查询订单失败: %w", err)
	}
	next, err := order.Status.Transit(domain.ActionPaymentSuccess)
	if err != nil {
		return err
	}
	err = s.repo.MarkOrderPaid(ctx, order.ID, order.Status, next)
	if err != nil {
		return err
	}
	order.Status = next
	s.produceStatusEvent(ctx, order)
	return nil
}

func (s *service) UserCancelOrder(ctx context.Context, uid, id int64) error {
	order, err := s.findOrderByUIDAndID(ctx, uid, id)
	if err != nil {
		return err
	}
	next, err := order.Status.Transit(domain.ActionUserCancel)
	if err != nil {
		return err
	}
	err = s.repo.CancelOrder(ctx, order.ID, order.Status, next,
		userCancelReason, order.PayStatus == domain.PayStatusPaid)
	if err != nil {
		return err
	}
	order.Status = next
	s.produceStatusEvent(ctx, order)
	return nil
}

func (s *service) RepeatOrder(ctx context.Context, uid, id int64) error {
	order, err := s.findOrderByUIDAndID(ctx, uid, id)
	if err != nil {
		return err
	}
	items, err := s.repo.FindOrderItems(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("查询订单明细失败: %w", err)
	}
	return s.cartSvc.AddItems(ctx, uid, slice.Map(items, func(idx int, src domain.OrderItem) cart.CartItem {
		return cart.CartItem{
			DishID:    src.DishID,
			SetmealID: src.SetmealID,
			Name:      src.Name,
			Image:     src.Image,
			Flavor:    src.Flavor,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	}))
}

func (s *service) RemindOrder(ctx context.Context, uid, id int64) error {
	order, err := s.findOrderByUIDAndID(ctx, uid, id)
	if err != nil {
		return err
	}
	return s.reminderProducer.Produce(ctx, event.ReminderEvent{
		OrderSN: order.SN,
		UID:     order.UID,
	})
}

func (s *service) ListOrders(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrdersByUID(ctx, uid, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOrdersByUID(ctx, uid, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *service) OrderDetail(ctx context.Context, uid, id int64) (domain.Order, error) {
	order, err := s.findOrderByUIDAndID(ctx, uid, id)
	if err != nil {
		return domain.Order{}, err
	}
	return s.attachItems(ctx, order)
}

func (s *service) SearchOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.ListOrders(ctx, query)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountOrders(ctx, query)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *service) AdminOrderDetail(ctx context.Context, id int64) (domain.Order, error) {
	order, err := s.repo.FindOrderByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询订单失败: %w", err)
	}
	return s.attachItems(ctx, order)
}

func (s *service) Statistics(ctx context.Context) (domain.OrderStatistics, error) {
	var (
		eg  errgroup.Group
		res domain.OrderStatistics
	)
	eg.Go(func() error {
		var err error
		res.ToBeConfirmed, err = s.repo.CountOrdersByStatus(ctx, domain.StatusToBeConfirmed)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Confirmed, err = s.repo.CountOrdersByStatus(ctx, domain.StatusConfirmed)
		return err
	})
	eg.Go(func() error {
		var err error
		res.DeliveryInProgress, err = s.repo.CountOrdersByStatus(ctx, domain.StatusDeliveryInProgress)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.OrderStatistics{}, err
	}
	return res, nil
}

func (s *service) ConfirmOrder(ctx context.Context, id int64) error {
	return s.transit(ctx, id, domain.ActionConfirm, func(order domain.Order, next domain.OrderStatus) error {
		return s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, next)
	})
}

func (s *service) RejectOrder(ctx context.Context, id int64, reason string) error {
	return s.transit(ctx, id, domain.ActionReject, func(order domain.Order, next domain.OrderStatus) error {
		return s.repo.RejectOrder(ctx, order.ID, order.Status, next,
			reason, order.PayStatus == domain.PayStatusPaid)
	})
}

func (s *service) CancelOrder(ctx context.Context, id int64, reason string) error {
	return s.transit(ctx, id, domain.ActionCancel, func(order domain.Order, next domain.OrderStatus) error {
		return s.repo.CancelOrder(ctx, order.ID, order.Status, next,
			reason, order.PayStatus == domain.PayStatusPaid)
	})
}

func (s *service) DeliverOrder(ctx context.Context, id int64) error {
	return s.transit(ctx, id, domain.ActionDeliver, func(order domain.Order, next domain.OrderStatus) error {
		return s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, next)
	})
}

func (s *service) CompleteOrder(ctx context.Context, id int64) error {
	return s.transit(ctx, id, domain.ActionComplete, func(order domain.Order, next domain.OrderStatus) error {
		return s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, next)
	})
}

func (s *service) ListTimeoutOrders(ctx context.Context, status domain.OrderStatus, orderedBefore int64, offset, limit int) ([]domain.Order, error) {
	return s.repo.ListTimeoutOrders(ctx, status, orderedBefore, offset, limit)
}

func (s *service) CancelTimeoutOrder(ctx context.Context, order domain.Order) error {
	next, err := order.Status.Transit(domain.ActionPaymentTimeout)
	if err != nil {
		return err
	}
	err = s.repo.CancelOrder(ctx, order.ID, order.Status, next,
		paymentTimeoutReason, order.PayStatus == domain.PayStatusPaid)
	if err != nil {
		return err
	}
	order.Status = next
	s.produceStatusEvent(ctx, order)
	return nil
}

func (s *service) CompleteTimeoutOrder(ctx context.Context, order domain.Order) error {
	next, err := order.Status.Transit(domain.ActionDeliveryTimeout)
	if err != nil {
		return err
	}
	err = s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, next)
	if err != nil {
		return err
	}
	order.Status = next
	s.produceStatusEvent(ctx, order)
	return nil
}

// transit 先按状态机校验动作合法性, 再以当前状态为前置条件更新。
// 并发下即便校验通过, 更新也可能因状态已变而返回 domain.ErrIllegalTransition
func (s *service) transit(ctx context.Context, id int64, action domain.Action,
	update func(order domain.Order, next domain.OrderStatus) error) error {
	order, err := s.repo.FindOrderByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("查询订单失败: %w", err)
	}
	next, err := order.Status.Transit(action)
	if err != nil {
		return err
	}
	if err := update(order, next); err != nil {
		return err
	}
	order.Status = next
	s.produceStatusEvent(ctx, order)
	return nil
}

func (s *service) findOrderByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	order, err := s.repo.FindOrderByUIDAndID(ctx, uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询订单失败: %w", err)
	}
	return order, nil
}

func (s *service) attachItems(ctx context.Context, order domain.Order) (domain.Order, error) {
	items, err := s.repo.FindOrderItems(ctx, order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查询订单明细失败: %w", err)
	}
	order.Items = items
	return order, nil
}

// 状态事件发送失败不影响主流程, 记录日志后人工对账
func (s *service) produceStatusEvent(ctx context.Context, order domain.Order) {
	evt := event.OrderStatusEvent{
		OrderSN: order.SN,
		UID:     order.UID,
		Status:  order.Status.ToUint8(),
	}
	if err := s.statusProducer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单状态变更消息失败",
			elog.FieldErr(err),
			elog.String("sn", order.SN))
	}
}
