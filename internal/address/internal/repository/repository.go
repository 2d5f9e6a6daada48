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
	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/ecodeclub/takeout/internal/address/internal/repository/cache"
	"github.com/ecodeclub/takeout/internal/address/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type AddressRepository interface {
	Save(ctx context.Context, addr domain.Address) (int64, error)
	Update(ctx context.Context, addr domain.Address) error
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	FindByID(ctx context.Context, uid, id int64) (domain.Address, error)
	FindDefault(ctx context.Context, uid int64) (domain.Address, error)
	SetDefault(ctx context.Context, uid, id int64) error
	Delete(ctx context.Context, uid, id int64) error
}

func NewAddressRepository(d dao.AddressDAO, c cache.AddressCache) AddressRepository {
	return &addressRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type addressRepository struct {
	dao    dao.AddressDAO
	cache  cache.AddressCache
	logger *elog.Component
}

func (r *addressRepository) Save(ctx context.Context, addr domain.Address) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(addr))
	if err != nil {
		return 0, err
	}
	if addr.IsDefault {
		r.delDefaultCache(ctx, addr.UID)
	}
	return id, nil
}

func (r *addressRepository) Update(ctx context.Context, addr domain.Address) error {
	err := r.dao.Update(ctx, r.toEntity(addr))
	if err != nil {
		return err
	}
	// 可能改的就是默认地址
	r.delDefaultCache(ctx, addr.UID)
	return nil
}

func (r *addressRepository) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	addrs, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(addrs, func(idx int, src dao.Address) domain.Address {
		return r.toDomain(src)
	}), nil
}

func (r *addressRepository) FindByID(ctx context.Context, uid, id int64) (domain.Address, error) {
	addr, err := r.dao.FindByID(ctx, uid, id)
	if err != nil {
		return domain.Address{}, err
	}
	return r.toDomain(addr), nil
}

func (r *addressRepository) FindDefault(ctx context.Context, uid int64) (domain.Address, error) {
	res, err := r.cache.GetDefault(ctx, uid)
	if err == nil {
		return res, nil
	}
	addr, err := r.dao.FindDefaultByUID(ctx, uid)
	if err != nil {
		return domain.Address{}, err
	}
	res = r.toDomain(addr)
	if err = r.cache.SetDefault(ctx, res); err != nil {
		r.logger.Error("缓存默认地址失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
	return res, nil
}

func (r *addressRepository) SetDefault(ctx context.Context, uid, id int64) error {
	err := r.dao.SetDefault(ctx, uid, id)
	if err != nil {
		return err
	}
	r.delDefaultCache(ctx, uid)
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, uid, id int64) error {
	err := r.dao.Delete(ctx, uid, id)
	if err != nil {
		return err
	}
	r.delDefaultCache(ctx, uid)
	return nil
}

// 缓存删除失败只能靠过期时间兜底
func (r *addressRepository) delDefaultCache(ctx context.Context, uid int64) {
	if err := r.cache.DelDefault(ctx, uid); err != nil {
		r.logger.Error("删除默认地址缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
}

func (r *addressRepository) toEntity(addr domain.Address) dao.Address {
	var isDefault uint8
	if addr.IsDefault {
		isDefault = 1
	}
	return dao.Address{
		Id:           addr.ID,
		Uid:          addr.UID,
		Consignee:    addr.Consignee,
		Sex:          addr.Sex,
		Phone:        addr.Phone,
		ProvinceName: addr.ProvinceName,
		CityName:     addr.CityName,
		DistrictName: addr.DistrictName,
		Detail:       addr.Detail,
		Label:        addr.Label,
		IsDefault:    isDefault,
	}
}

func (r *addressRepository) toDomain(addr dao.Address) domain.Address {
	return domain.Address{
		ID:           addr.Id,
		UID:          addr.Uid,
		Consignee:    addr.Consignee,
		Sex:          addr.Sex,
		Phone:        addr.Phone,
		ProvinceName: addr.ProvinceName,
		CityName:     addr.CityName,
		DistrictName: addr.DistrictName,
		Detail:       addr.Detail,
		Label:        addr.Label,
		IsDefault:    addr.IsDefault == 1,
	}
}
