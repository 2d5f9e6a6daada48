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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/repository/dao"
)

type ShoppingCartRepository interface {
	AddItem(ctx context.Context, item domain.CartItem) (int64, error)
	AddItems(ctx context.Context, items []domain.CartItem) error
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	ListItems(ctx context.Context, uid int64) ([]domain.CartItem, error)
	FindItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
	RemoveItem(ctx context.Context, id int64) error
	Clean(ctx context.Context, uid int64) error
}

func NewRepository(d dao.ShoppingCartDAO) ShoppingCartRepository {
	return &shoppingCartRepository{d: d}
}

type shoppingCartRepository struct {
	d dao.ShoppingCartDAO
}

func (r *shoppingCartRepository) AddItem(ctx context.Context, item domain.CartItem) (int64, error) {
	return r.d.Insert(ctx, r.toEntity(item))
}

func (r *shoppingCartRepository) AddItems(ctx context.Context, items []domain.CartItem) error {
	return r.d.BatchInsert(ctx, slice.Map(items, func(idx int, src domain.CartItem) dao.ShoppingCartItem {
		return r.toEntity(src)
	}))
}

func (r *shoppingCartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	return r.d.UpdateQuantity(ctx, id, quantity)
}

func (r *shoppingCartRepository) ListItems(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := r.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.ShoppingCartItem) domain.CartItem {
		return r.toDomain(src)
	}), nil
}

func (r *shoppingCartRepository) FindItem(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	res, err := r.d.FindByUIDAndItem(ctx, r.toEntity(item))
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.toDomain(res), nil
}

func (r *shoppingCartRepository) RemoveItem(ctx context.Context, id int64) error {
	return r.d.DeleteByID(ctx, id)
}

func (r *shoppingCartRepository) Clean(ctx context.Context, uid int64) error {
	return r.d.DeleteByUID(ctx, uid)
}

func (r *shoppingCartRepository) toEntity(item domain.CartItem) dao.ShoppingCartItem {
	return dao.ShoppingCartItem{
		Id:         item.ID,
		Uid:        item.UID,
		DishId:     item.DishID,
		SetmealId:  item.SetmealID,
		Name:       item.Name,
		Image:      item.Image,
		DishFlavor: item.Flavor,
		Price:      item.Price,
		Quantity:   item.Quantity,
	}
}

func (r *shoppingCartRepository) toDomain(item dao.ShoppingCartItem) domain.CartItem {
	return domain.CartItem{
		ID:        item.Id,
		UID:       item.Uid,
		DishID:    item.DishId,
		SetmealID: item.SetmealId,
		Name:      item.Name,
		Image:     item.Image,
		Flavor:    item.DishFlavor,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Ctime:     item.Ctime,
		Utime:     item.Utime,
	}
}
