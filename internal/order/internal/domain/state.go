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

import "errors"

var ErrIllegalTransition = errors.New("当前订单状态不允许该操作")

type Action uint8

const (
	// ActionPaymentSuccess 用户支付成功
	ActionPaymentSuccess Action = iota + 1
	// ActionConfirm 商家接单
	ActionConfirm
	// ActionReject 商家拒单
	ActionReject
	// ActionCancel 商家或系统取消
	ActionCancel
	// ActionUserCancel 用户取消, 已接单之后不允许
	ActionUserCancel
	// ActionDeliver 派送
	ActionDeliver
	// ActionComplete 完成
	ActionComplete
	// ActionPaymentTimeout 支付超时, 定时任务触发
	ActionPaymentTimeout
	// ActionDeliveryTimeout 派送超时, 定时任务触发
	ActionDeliveryTimeout
)

type transition struct {
	from []OrderStatus
	to   OrderStatus
}

var transitions = map[Action]transition{
	ActionPaymentSuccess: {
		from: []OrderStatus{StatusPendingPayment},
		to:   StatusToBeConfirmed,
	},
	ActionConfirm: {
		from: []OrderStatus{StatusToBeConfirmed},
		to:   StatusConfirmed,
	},
	ActionReject: {
		from: []OrderStatus{StatusToBeConfirmed},
		to:   StatusCancelled,
	},
	ActionCancel: {
		from: []OrderStatus{StatusPendingPayment, StatusToBeConfirmed, StatusConfirmed},
		to:   StatusCancelled,
	},
	// 用户侧比商家侧更严格, 商家接单之后用户不能再取消
	ActionUserCancel: {
		from: []OrderStatus{StatusPendingPayment, StatusToBeConfirmed},
		to:   StatusCancelled,
	},
	ActionDeliver: {
		from: []OrderStatus{StatusConfirmed},
		to:   StatusDeliveryInProgress,
	},
	ActionComplete: {
		from: []OrderStatus{StatusDeliveryInProgress},
		to:   StatusCompleted,
	},
	ActionPaymentTimeout: {
		from: []OrderStatus{StatusPendingPayment},
		to:   StatusCancelled,
	},
	ActionDeliveryTimeout: {
		from: []OrderStatus{StatusDeliveryInProgress},
		to:   StatusCompleted,
	},
}

// Transit 计算当前状态执行 action 之后的目标状态
// 不在状态表里的组合一律返回 ErrIllegalTransition, 不做任何修改
func (s OrderStatus) Transit(action Action) (OrderStatus, error) {
	t, ok := transitions[action]
	if !ok {
		return 0, ErrIllegalTransition
	}
	for _, from := range t.from {
		if from == s {
			return t.to, nil
		}
	}
	return 0, ErrIllegalTransition
}
