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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/order_repository.mock.go OrderRepository
type OrderRepository interface {
	// CreateOrder 订单、明细落库并清空购物车, 三者在同一事务内
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderByID(ctx context.Context, id int64) (domain.Order, error)
	FindOrderByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderItems(ctx context.Context, oid int64) ([]domain.OrderItem, error)
	ListOrdersByUID(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	CountOrdersByUID(ctx context.Context, uid int64, status domain.OrderStatus) (int64, error)
	ListOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, error)
	CountOrders(ctx context.Context, query domain.OrderQuery) (int64, error)
	CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)
	ListTimeoutOrders(ctx context.Context, status domain.OrderStatus, orderedBefore int64, offset, limit int) ([]domain.Order, error)

	// 下面的状态流转都带前置状态条件, 并发修改导致前置状态不成立时
	// 返回 domain.ErrIllegalTransition, 订单保持原样
	MarkOrderPaid(ctx context.Context, id int64, from, to domain.OrderStatus) error
	CancelOrder(ctx context.Context, id int64, from, to domain.OrderStatus, reason string, refund bool) error
	RejectOrder(ctx context.Context, id int64, from, to domain.OrderStatus, reason string, refund bool) error
	UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	items := slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return r.toItemEntity(src)
	})
	id, err := r.dao.CreateOrder(ctx, r.toEntity(order), items)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id
	return order, nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	order, err := r.dao.FindOrderByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(order), nil
}

func (r *orderRepository) FindOrderByUIDAndID(ctx context.Context, uid, id int64) (domain.Order, error) {
	order, err := r.dao.FindOrderByUIDAndID(ctx, uid, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(order), nil
}

func (r *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := r.dao.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(order), nil
}

func (r *orderRepository) FindOrderItems(ctx context.Context, oid int64) ([]domain.OrderItem, error) {
	items, err := r.dao.FindOrderItemsByOrderID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return r.toItemDomain(src)
	}), nil
}

func (r *orderRepository) ListOrdersByUID(ctx context.Context, uid int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	orders, err := r.dao.ListOrdersByUID(ctx, uid, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountOrdersByUID(ctx context.Context, uid int64, status domain.OrderStatus) (int64, error) {
	return r.dao.CountOrdersByUID(ctx, uid, status.ToUint8())
}

func (r *orderRepository) ListOrders(ctx context.Context, query domain.OrderQuery) ([]domain.Order, error) {
	orders, err := r.dao.ListOrders(ctx, r.toQueryEntity(query))
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountOrders(ctx context.Context, query domain.OrderQuery) (int64, error) {
	return r.dao.CountOrders(ctx, r.toQueryEntity(query))
}

func (r *orderRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.dao.CountOrdersByStatus(ctx, status.ToUint8())
}

func (r *orderRepository) ListTimeoutOrders(ctx context.Context, status domain.OrderStatus, orderedBefore int64, offset, limit int) ([]domain.Order, error) {
	orders, err := r.dao.ListOrdersByStatusAndOrderTimeLT(ctx, status.ToUint8(), orderedBefore, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) MarkOrderPaid(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	return r.transit(ctx, id, from, map[string]any{
		"status":        to.ToUint8(),
		"pay_status":    domain.PayStatusPaid.ToUint8(),
		"checkout_time": time.Now().UnixMilli(),
	})
}

func (r *orderRepository) CancelOrder(ctx context.Context, id int64, from, to domain.OrderStatus, reason string, refund bool) error {
	updates := map[string]any{
		"status":        to.ToUint8(),
		"cancel_reason": reason,
		"cancel_time":   time.Now().UnixMilli(),
	}
	if refund {
		updates["pay_status"] = domain.PayStatusRefunded.ToUint8()
	}
	return r.transit(ctx, id, from, updates)
}

func (r *orderRepository) RejectOrder(ctx context.Context, id int64, from, to domain.OrderStatus, reason string, refund bool) error {
	updates := map[string]any{
		"status":           to.ToUint8(),
		"rejection_reason": reason,
		"cancel_time":      time.Now().UnixMilli(),
	}
	if refund {
		updates["pay_status"] = domain.PayStatusRefunded.ToUint8()
	}
	return r.transit(ctx, id, from, updates)
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	return r.transit(ctx, id, from, map[string]any{
		"status": to.ToUint8(),
	})
}

func (r *orderRepository) transit(ctx context.Context, id int64, from domain.OrderStatus, updates map[string]any) error {
	affected, err := r.dao.UpdateOrderIfStatus(ctx, id, from.ToUint8(), updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrIllegalTransition
	}
	return nil
}

func (r *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:              order.ID,
		SN:              order.SN,
		Uid:             order.UID,
		Consignee:       order.Consignee,
		Phone:           order.Phone,
		Address:         order.Address,
		Amount:          order.Amount,
		Status:          order.Status.ToUint8(),
		PayStatus:       order.PayStatus.ToUint8(),
		OrderTime:       order.OrderTime,
		CheckoutTime:    order.CheckoutTime,
		CancelReason:    order.CancelReason,
		RejectionReason: order.RejectionReason,
		CancelTime:      order.CancelTime,
		Remark:          order.Remark,
	}
}

func (r *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:              order.Id,
		SN:              order.SN,
		UID:             order.Uid,
		Consignee:       order.Consignee,
		Phone:           order.Phone,
		Address:         order.Address,
		Amount:          order.Amount,
		Status:          domain.OrderStatus(order.Status),
		PayStatus:       domain.PayStatus(order.PayStatus),
		OrderTime:       order.OrderTime,
		CheckoutTime:    order.CheckoutTime,
		CancelReason:    order.CancelReason,
		RejectionReason: order.RejectionReason,
		CancelTime:      order.CancelTime,
		Remark:          order.Remark,
		Ctime:           order.Ctime,
		Utime:           order.Utime,
	}
}

func (r *orderRepository) toItemEntity(item domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		OrderId:    item.OrderID,
		DishId:     item.DishID,
		SetmealId:  item.SetmealID,
		Name:       item.Name,
		Image:      item.Image,
		DishFlavor: item.Flavor,
		Price:      item.Price,
		Quantity:   item.Quantity,
	}
}

func (r *orderRepository) toItemDomain(item dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		OrderID:   item.OrderId,
		DishID:    item.DishId,
		SetmealID: item.SetmealId,
		Name:      item.Name,
		Image:     item.Image,
		Flavor:    item.DishFlavor,
		Price:     item.Price,
		Quantity:  item.Quantity,
	}
}

func (r *orderRepository) toQueryEntity(query domain.OrderQuery) dao.OrderQuery {
	return dao.OrderQuery{
		SN:        query.SN,
		UID:       query.UID,
		Phone:     query.Phone,
		Status:    query.Status.ToUint8(),
		BeginTime: query.BeginTime,
		EndTime:   query.EndTime,
		Offset:    query.Offset,
		Limit:     query.Limit,
	}
}
