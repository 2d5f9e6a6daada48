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

package web

type SaveAddressReq struct {
	ID           int64  `json:"id"`
	Consignee    string `json:"consignee"`
	Sex          uint8  `json:"sex"`
	Phone        string `json:"phone"`
	ProvinceName string `json:"provinceName"`
	CityName     string `json:"cityName"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail"`
	Label        string `json:"label"`
}

type AddressIDReq struct {
	ID int64 `json:"id"`
}

type Address struct {
	ID           int64  `json:"id"`
	Consignee    string `json:"consignee"`
	Sex          uint8  `json:"sex"`
	Phone        string `json:"phone"`
	ProvinceName string `json:"provinceName"`
	CityName     string `json:"cityName"`
	DistrictName string `json:"districtName"`
	Detail       string `json:"detail"`
	Label        string `json:"label"`
	IsDefault    bool   `json:"isDefault"`
}

type ListAddressResp struct {
	Addresses []Address `json:"addresses"`
}
