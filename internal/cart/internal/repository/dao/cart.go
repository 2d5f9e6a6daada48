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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type ShoppingCartDAO interface {
	Insert(ctx context.Context, item ShoppingCartItem) (int64, error)
	BatchInsert(ctx context.Context, items []ShoppingCartItem) error
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	FindByUID(ctx context.Context, uid int64) ([]ShoppingCartItem, error)
	// FindByUIDAndItem 按菜品/套餐及口味定位购物车中已有的同款
	FindByUIDAndItem(ctx context.Context, item ShoppingCartItem) (ShoppingCartItem, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByUID(ctx context.Context, uid int64) error
	// DeleteByUIDWithTx 在外部事务内清空购物车, 提交订单时使用
	DeleteByUIDWithTx(tx *gorm.DB, uid int64) error
}

func NewShoppingCartGORMDAO(db *egorm.Component) ShoppingCartDAO {
	return &shoppingCartGORMDAO{db: db}
}

type shoppingCartGORMDAO struct {
	db *egorm.Component
}

func (g *shoppingCartGORMDAO) Insert(ctx context.Context, item ShoppingCartItem) (int64, error) {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	err := g.db.WithContext(ctx).Create(&item).Error
	return item.Id, err
}

func (g *shoppingCartGORMDAO) BatchInsert(ctx context.Context, items []ShoppingCartItem) error {
	now := time.Now().UnixMilli()
	for i := range items {
		items[i].Ctime, items[i].Utime = now, now
	}
	return g.db.WithContext(ctx).Create(&items).Error
}

func (g *shoppingCartGORMDAO) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	return g.db.WithContext(ctx).Model(&ShoppingCartItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (g *shoppingCartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]ShoppingCartItem, error) {
	var res []ShoppingCartItem
	err := g.db.WithContext(ctx).Where("uid = ?", uid).Order("ctime asc").Find(&res).Error
	return res, err
}

func (g *shoppingCartGORMDAO) FindByUIDAndItem(ctx context.Context, item ShoppingCartItem) (ShoppingCartItem, error) {
	var res ShoppingCartItem
	err := g.db.WithContext(ctx).
		Where("uid = ? AND dish_id = ? AND setmeal_id = ? AND dish_flavor = ?",
			item.Uid, item.DishId, item.SetmealId, item.DishFlavor).
		First(&res).Error
	return res, err
}

func (g *shoppingCartGORMDAO) DeleteByID(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&ShoppingCartItem{}).Error
}

func (g *shoppingCartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Where("uid = ?", uid).Delete(&ShoppingCartItem{}).Error
}

func (g *shoppingCartGORMDAO) DeleteByUIDWithTx(tx *gorm.DB, uid int64) error {
	return tx.Where("uid = ?", uid).Delete(&ShoppingCartItem{}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ShoppingCartItem{})
}

type ShoppingCartItem struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:购物车项自增ID"`
	Uid        int64  `gorm:"not null;index:idx_uid,comment:用户ID"`
	DishId     int64  `gorm:"comment:菜品ID"`
	SetmealId  int64  `gorm:"comment:套餐ID"`
	Name       string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Image      string `gorm:"type:varchar(255);comment:商品图片快照"`
	DishFlavor string `gorm:"type:varchar(255);comment:口味快照"`
	Price      int64  `gorm:"not null;comment:单价;单位为分"`
	Quantity   int64  `gorm:"not null;default:1;comment:数量"`
	Ctime      int64
	Utime      int64
}
