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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrDefaultAddressNotFound = errors.New("默认地址没找到")
)

const (
	expiration = 24 * time.Hour
)

// AddressECache 只缓存默认地址, 下单高峰期这是最热的一条查询
type AddressECache struct {
	ec ecache.Cache
}

func NewAddressECache(ec ecache.Cache) AddressCache {
	return &AddressECache{
		ec: &ecache.NamespaceCache{
			Namespace: "address:",
			C:         ec,
		},
	}
}

type AddressCache interface {
	SetDefault(ctx context.Context, addr domain.Address) error
	GetDefault(ctx context.Context, uid int64) (domain.Address, error)
	DelDefault(ctx context.Context, uid int64) error
}

func (c *AddressECache) SetDefault(ctx context.Context, addr domain.Address) error {
	data, err := json.Marshal(addr)
	if err != nil {
		return errors.Wrap(err, "序列化默认地址失败")
	}
	return c.ec.Set(ctx, c.defaultKey(addr.UID), string(data), expiration)
}

func (c *AddressECache) GetDefault(ctx context.Context, uid int64) (domain.Address, error) {
	val := c.ec.Get(ctx, c.defaultKey(uid))
	if val.KeyNotFound() {
		return domain.Address{}, ErrDefaultAddressNotFound
	}
	if val.Err != nil {
		return domain.Address{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var addr domain.Address
	err := json.Unmarshal([]byte(val.Val.(string)), &addr)
	if err != nil {
		return domain.Address{}, errors.Wrap(err, "反序列化默认地址失败")
	}
	return addr, nil
}

func (c *AddressECache) DelDefault(ctx context.Context, uid int64) error {
	_, err := c.ec.Delete(ctx, c.defaultKey(uid))
	return err
}

// 注意 Namespace 设置
func (c *AddressECache) defaultKey(uid int64) string {
	return fmt.Sprintf("default:%d", uid)
}
