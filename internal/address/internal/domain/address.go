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

package domain

// Address 用户地址簿中的一条收货地址
type Address struct {
	ID  int64
	UID int64
	// Consignee 收货人
	Consignee string
	// Sex 0 女 1 男
	Sex          uint8
	Phone        string
	ProvinceName string
	CityName     string
	DistrictName string
	// Detail 详细地址
	Detail string
	// Label 标签, 比如家、公司、学校
	Label     string
	IsDefault bool
}

// Full 省市区加详细地址拼接后的完整地址, 下单时快照进订单
func (a Address) Full() string {
	return a.ProvinceName + a.CityName + a.DistrictName + a.Detail
}
