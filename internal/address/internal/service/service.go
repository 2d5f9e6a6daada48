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

	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/ecodeclub/takeout/internal/address/internal/repository"
	"gorm.io/gorm"
)

var ErrAddressNotFound = errors.New("地址不存在")

//go:generate mockgen -source=./service.go -package=addressmocks -destination=../../mocks/address.mock.go Service
type Service interface {
	Save(ctx context.Context, addr domain.Address) (int64, error)
	Update(ctx context.Context, addr domain.Address) error
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	// Detail 只能查到本人的地址, 查别人的地址返回 ErrAddressNotFound
	Detail(ctx context.Context, uid, id int64) (domain.Address, error)
	Default(ctx context.Context, uid int64) (domain.Address, error)
	SetDefault(ctx context.Context, uid, id int64) error
	Delete(ctx context.Context, uid, id int64) error
}

func NewService(repo repository.AddressRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.AddressRepository
}

func (s *service) Save(ctx context.Context, addr domain.Address) (int64, error) {
	return s.repo.Save(ctx, addr)
}

func (s *service) Update(ctx context.Context, addr domain.Address) error {
	return s.repo.Update(ctx, addr)
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.List(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Address, error) {
	addr, err := s.repo.FindByID(ctx, uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Address{}, ErrAddressNotFound
	}
	return addr, err
}

func (s *service) Default(ctx context.Context, uid int64) (domain.Address, error) {
	addr, err := s.repo.FindDefault(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Address{}, ErrAddressNotFound
	}
	return addr, err
}

func (s *service) SetDefault(ctx context.Context, uid, id int64) error {
	err := s.repo.SetDefault(ctx, uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAddressNotFound
	}
	return err
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	return s.repo.Delete(ctx, uid, id)
}
