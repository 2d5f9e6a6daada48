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

	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/repository"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// AddItem 加购, 同款商品已在购物车中则数量加一
	AddItem(ctx context.Context, uid int64, item domain.CartItem) error
	// RemoveItem 减购, 数量减到零则从购物车移除
	RemoveItem(ctx context.Context, uid int64, item domain.CartItem) error
	// AddItems 批量加购, 再来一单使用
	AddItems(ctx context.Context, uid int64, items []domain.CartItem) error
	ListItems(ctx context.Context, uid int64) ([]domain.CartItem, error)
	CleanCart(ctx context.Context, uid int64) error
}

func NewService(repo repository.ShoppingCartRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ShoppingCartRepository
}

func (s *service) AddItem(ctx context.Context, uid int64, item domain.CartItem) error {
	item.UID = uid
	existing, err := s.repo.FindItem(ctx, item)
	switch {
	case err == nil:
		return s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1)
	case errors.Is(err, gorm.ErrRecordNotFound):
		item.Quantity = 1
		_, er := s.repo.AddItem(ctx, item)
		return er
	default:
		return fmt.Errorf("查找购物车已有商品失败: %w", err)
	}
}

func (s *service) RemoveItem(ctx context.Context, uid int64, item domain.CartItem) error {
	item.UID = uid
	existing, err := s.repo.FindItem(ctx, item)
	if err != nil {
		return fmt.Errorf("查找购物车已有商品失败: %w", err)
	}
	if existing.Quantity <= 1 {
		return s.repo.RemoveItem(ctx, existing.ID)
	}
	return s.repo.UpdateQuantity(ctx, existing.ID, existing.Quantity-1)
}

func (s *service) AddItems(ctx context.Context, uid int64, items []domain.CartItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].UID = uid
	}
	return s.repo.AddItems(ctx, items)
}

func (s *service) ListItems(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	return s.repo.ListItems(ctx, uid)
}

func (s *service) CleanCart(ctx context.Context, uid int64) error {
	return s.repo.Clean(ctx, uid)
}
