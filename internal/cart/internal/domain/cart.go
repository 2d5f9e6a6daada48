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

// CartItem 购物车中的一项, 记录的是加购时的商品快照
type CartItem struct {
	ID        int64
	UID       int64
	DishID    int64
	SetmealID int64
	Name      string
	Image     string
	Flavor    string
	// Price 单价;单位为分
	Price    int64
	Quantity int64
	Ctime    int64
	Utime    int64
}
