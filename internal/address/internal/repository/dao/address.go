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

type AddressDAO interface {
	Insert(ctx context.Context, addr Address) (int64, error)
	Update(ctx context.Context, addr Address) error
	FindByUID(ctx context.Context, uid int64) ([]Address, error)
	FindByID(ctx context.Context, uid, id int64) (Address, error)
	FindDefaultByUID(ctx context.Context, uid int64) (Address, error)
	SetDefault(ctx context.Context, uid, id int64) error
	Delete(ctx context.Context, uid, id int64) error
}

func NewAddressGORMDAO(db *egorm.Component) AddressDAO {
	return &addressGORMDAO{db: db}
}

type addressGORMDAO struct {
	db *egorm.Component
}

func (g *addressGORMDAO) Insert(ctx context.Context, addr Address) (int64, error) {
	now := time.Now().UnixMilli()
	addr.Ctime = now
	addr.Utime = now
	err := g.db.WithContext(ctx).Create(&addr).Error
	return addr.Id, err
}

func (g *addressGORMDAO) Update(ctx context.Context, addr Address) error {
	return g.db.WithContext(ctx).Model(&Address{}).
		Where("uid = ? AND id = ?", addr.Uid, addr.Id).
		Updates(map[string]any{
			"consignee":     addr.Consignee,
			"sex":           addr.Sex,
			"phone":         addr.Phone,
			"province_name": addr.ProvinceName,
			"city_name":     addr.CityName,
			"district_name": addr.DistrictName,
			"detail":        addr.Detail,
			"label":         addr.Label,
			"utime":         time.Now().UnixMilli(),
		}).Error
}

func (g *addressGORMDAO) FindByUID(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := g.db.WithContext(ctx).Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *addressGORMDAO) FindByID(ctx context.Context, uid, id int64) (Address, error) {
	var res Address
	err := g.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).First(&res).Error
	return res, err
}

func (g *addressGORMDAO) FindDefaultByUID(ctx context.Context, uid int64) (Address, error) {
	var res Address
	err := g.db.WithContext(ctx).Where("uid = ? AND is_default = ?", uid, 1).First(&res).Error
	return res, err
}

// SetDefault 同一用户只保留一个默认地址, 两步更新放在一个事务里
func (g *addressGORMDAO) SetDefault(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Address{}).Where("uid = ?", uid).
			Updates(map[string]any{"is_default": 0, "utime": now}).Error
		if err != nil {
			return err
		}
		res := tx.Model(&Address{}).Where("uid = ? AND id = ?", uid, id).
			Updates(map[string]any{"is_default": 1, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (g *addressGORMDAO) Delete(ctx context.Context, uid, id int64) error {
	return g.db.WithContext(ctx).Where("uid = ? AND id = ?", uid, id).Delete(&Address{}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Address{})
}

// Address 地址簿
type Address struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Uid          int64  `gorm:"not null;index:idx_uid;comment:用户 ID"`
	Consignee    string `gorm:"type:varchar(128);not null;comment:收货人"`
	Sex          uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:性别 0 女 1 男"`
	Phone        string `gorm:"type:varchar(32);not null;comment:手机号"`
	ProvinceName string `gorm:"type:varchar(64);comment:省份名称"`
	CityName     string `gorm:"type:varchar(64);comment:城市名称"`
	DistrictName string `gorm:"type:varchar(64);comment:区县名称"`
	Detail       string `gorm:"type:varchar(512);not null;comment:详细地址"`
	Label        string `gorm:"type:varchar(64);comment:标签"`
	IsDefault    uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:是否默认 0 否 1 是"`
	Ctime        int64
	Utime        int64
}

func (Address) TableName() string {
	return "address_book"
}
