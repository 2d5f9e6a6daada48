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

package event

const (
	// PaymentSuccessEventName 支付侧确认收款之后发出的消息
	PaymentSuccessEventName = "payment_success_events"
	// OrderStatusEventName 订单状态变更消息, 营销和推送在下游消费
	OrderStatusEventName = "order_status_events"
	// ReminderEventName 用户催单消息, 商家端消费后提醒接单
	ReminderEventName = "order_reminder_events"
)

type PaymentSuccessEvent struct {
	OrderSN string `json:"orderSN"`
	PaidAt  int64  `json:"paidAt"`
}

type OrderStatusEvent struct {
	OrderSN string `json:"orderSN"`
	UID     int64  `json:"uid"`
	Status  uint8  `json:"status"`
}

type ReminderEvent struct {
	OrderSN string `json:"orderSN"`
	UID     int64  `json:"uid"`
}
