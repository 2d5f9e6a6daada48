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

// AddCartItemReq 加购请求, 同款商品重复加购只增加数量
type AddCartItemReq struct {
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Flavor    string `json:"flavor,omitempty"`
	Price     int64  `json:"price"`
}

// SubCartItemReq 减购请求
type SubCartItemReq struct {
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Flavor    string `json:"flavor,omitempty"`
}

type ListCartItemsResp struct {
	Items []CartItem `json:"items,omitempty"`
}

type CartItem struct {
	DishID    int64  `json:"dishId,omitempty"`
	SetmealID int64  `json:"setmealId,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Flavor    string `json:"flavor,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}
