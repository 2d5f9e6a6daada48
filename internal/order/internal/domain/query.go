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

// OrderQuery 管理端条件检索, 零值字段不参与过滤
type OrderQuery struct {
	SN     string
	UID    int64
	Phone  string
	Status OrderStatus
	// BeginTime/EndTime 按下单时间过滤, 毫秒时间戳
	BeginTime int64
	EndTime   int64
	Offset    int
	Limit     int
}

// OrderStatistics 管理端各状态订单数量统计
type OrderStatistics struct {
	ToBeConfirmed      int64
	Confirmed          int64
	DeliveryInProgress int64
}
