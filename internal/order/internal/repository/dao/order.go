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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateOrderSN 订单号撞了唯一索引, 理论上 SN 生成器保证不重复
var ErrDuplicateOrderSN = errors.New("订单号重复")

// OrderQuery 零值字段不参与过滤
type OrderQuery struct {
	SN        string
	UID       int64
	Phone     string
	Status    uint8
	BeginTime int64
	EndTime   int64
	Offset    int
	Limit     int
}

type OrderDAO interface {
	// CreateOrder 在一个事务内落库订单、订单明细并清空下单用户的购物车
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	FindOrderByID(ctx context.Context, id int64) (Order, error)
	FindOrderByUIDAndID(ctx context.Context, uid, id int64) (Order, error)
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	ListOrdersByUID(ctx context.Context, uid int64, status uint8, offset, limit int) ([]Order, error)
	CountOrdersByUID(ctx context.Context, uid int64, status uint8) (int64, error)
	ListOrders(ctx context.Context, query OrderQuery) ([]Order, error)
	CountOrders(ctx context.Context, query OrderQuery) (int64, error)
	CountOrdersByStatus(ctx context.Context, status uint8) (int64, error)
	// ListOrdersByStatusAndOrderTimeLT 超时对账任务按页捞取长时间停留在 status 的订单
	ListOrdersByStatusAndOrderTimeLT(ctx context.Context, status uint8, orderTime int64, offset, limit int) ([]Order, error)
	// UpdateOrderIfStatus 带状态前置条件的更新, 返回生效行数。
	// 返回 0 表示订单已被并发修改离开了 status 状态, 由上层决定如何处理
	UpdateOrderIfStatus(ctx context.Context, id int64, status uint8, updates map[string]any) (int64, error)
}

func NewOrderGORMDAO(db *egorm.Component, cartDAO cart.DAO) OrderDAO {
	return &orderGORMDAO{db: db, cartDAO: cartDAO}
}

type orderGORMDAO struct {
	db      *egorm.Component
	cartDAO cart.DAO
}

func (g *orderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	order.Ctime, order.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					return ErrDuplicateOrderSN
				}
			}
			return err
		}
		for i := range items {
			items[i].OrderId = order.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return g.cartDAO.DeleteByUIDWithTx(tx, order.Uid)
	})
	return order.Id, err
}

func (g *orderGORMDAO) FindOrderByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindOrderByUIDAndID(ctx context.Context, uid, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) ListOrdersByUID(ctx context.Context, uid int64, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	query := g.db.WithContext(ctx).Where("uid = ?", uid)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) CountOrdersByUID(ctx context.Context, uid int64, status uint8) (int64, error) {
	var res int64
	query := g.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid)
	if status > 0 {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) ListOrders(ctx context.Context, query OrderQuery) ([]Order, error) {
	var res []Order
	err := g.buildQuery(ctx, query).Order("id DESC").
		Offset(query.Offset).Limit(query.Limit).Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) CountOrders(ctx context.Context, query OrderQuery) (int64, error) {
	var res int64
	err := g.buildQuery(ctx, query).Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) buildQuery(ctx context.Context, query OrderQuery) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Order{})
	if query.SN != "" {
		db = db.Where("sn = ?", query.SN)
	}
	if query.UID > 0 {
		db = db.Where("uid = ?", query.UID)
	}
	if query.Phone != "" {
		db = db.Where("phone = ?", query.Phone)
	}
	if query.Status > 0 {
		db = db.Where("status = ?", query.Status)
	}
	if query.BeginTime > 0 {
		db = db.Where("order_time >= ?", query.BeginTime)
	}
	if query.EndTime > 0 {
		db = db.Where("order_time <= ?", query.EndTime)
	}
	return db
}

func (g *orderGORMDAO) CountOrdersByStatus(ctx context.Context, status uint8) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("status = ?", status).Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) ListOrdersByStatusAndOrderTimeLT(ctx context.Context, status uint8, orderTime int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("status = ? AND order_time < ?", status, orderTime).
		Order("id ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) UpdateOrderIfStatus(ctx context.Context, id int64, status uint8, updates map[string]any) (int64, error) {
	updates["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, status).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}

// Order 订单表
type Order struct {
	Id        int64  `gorm:"primaryKey,autoIncrement;comment:订单自增ID"`
	SN        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单号"`
	Uid       int64  `gorm:"not null;index:idx_uid;comment:下单用户ID"`
	Consignee string `gorm:"type:varchar(128);not null;comment:收货人快照"`
	Phone     string `gorm:"type:varchar(32);not null;index:idx_phone;comment:手机号快照"`
	Address   string `gorm:"type:varchar(512);not null;comment:收货地址快照"`
	Amount    int64  `gorm:"not null;comment:总金额;单位为分"`
	// status 与 order_time 的联合索引服务于超时对账任务的扫描
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_order_time;comment:订单状态 1=待付款 2=待接单 3=已接单 4=派送中 5=已完成 6=已取消"`
	PayStatus       uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:支付状态 0=未支付 1=已支付 2=已退款"`
	OrderTime       int64  `gorm:"not null;index:idx_status_order_time;comment:下单时间"`
	CheckoutTime    int64  `gorm:"comment:付款时间"`
	CancelReason    string `gorm:"type:varchar(255);comment:取消原因"`
	RejectionReason string `gorm:"type:varchar(255);comment:拒单原因"`
	CancelTime      int64  `gorm:"comment:取消时间"`
	Remark          string `gorm:"type:varchar(255);comment:备注"`
	Ctime           int64
	Utime           int64
}

// OrderItem 订单明细表, 下单时从购物车拷贝, 创建后不可变
type OrderItem struct {
	Id         int64  `gorm:"primaryKey,autoIncrement;comment:订单明细自增ID"`
	OrderId    int64  `gorm:"not null;index:idx_order_id;comment:订单ID"`
	DishId     int64  `gorm:"comment:菜品ID"`
	SetmealId  int64  `gorm:"comment:套餐ID"`
	Name       string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Image      string `gorm:"type:varchar(255);comment:商品图片快照"`
	DishFlavor string `gorm:"type:varchar(255);comment:口味快照"`
	Price      int64  `gorm:"not null;comment:单价;单位为分"`
	Quantity   int64  `gorm:"not null;comment:数量"`
	Ctime      int64
	Utime      int64
}
