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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []OrderStatus{
	StatusPendingPayment,
	StatusToBeConfirmed,
	StatusConfirmed,
	StatusDeliveryInProgress,
	StatusCompleted,
	StatusCancelled,
}

var allActions = []Action{
	ActionPaymentSuccess,
	ActionConfirm,
	ActionReject,
	ActionCancel,
	ActionUserCancel,
	ActionDeliver,
	ActionComplete,
	ActionPaymentTimeout,
	ActionDeliveryTimeout,
}

func TestOrderStatus_Transit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		current    OrderStatus
		action     Action
		wantStatus OrderStatus
	}{
		{
			name:       "支付成功_待付款到待接单",
			current:    StatusPendingPayment,
			action:     ActionPaymentSuccess,
			wantStatus: StatusToBeConfirmed,
		},
		{
			name:       "商家接单_待接单到已接单",
			current:    StatusToBeConfirmed,
			action:     ActionConfirm,
			wantStatus: StatusConfirmed,
		},
		{
			name:       "商家拒单_待接单到已取消",
			current:    StatusToBeConfirmed,
			action:     ActionReject,
			wantStatus: StatusCancelled,
		},
		{
			name:       "商家取消_待付款到已取消",
			current:    StatusPendingPayment,
			action:     ActionCancel,
			wantStatus: StatusCancelled,
		},
		{
			name:       "商家取消_待接单到已取消",
			current:    StatusToBeConfirmed,
			action:     ActionCancel,
			wantStatus: StatusCancelled,
		},
		{
			name:       "商家取消_已接单到已取消",
			current:    StatusConfirmed,
			action:     ActionCancel,
			wantStatus: StatusCancelled,
		},
		{
			name:       "用户取消_待付款到已取消",
			current:    StatusPendingPayment,
			action:     ActionUserCancel,
			wantStatus: StatusCancelled,
		},
		{
			name:       "用户取消_待接单到已取消",
			current:    StatusToBeConfirmed,
			action:     ActionUserCancel,
			wantStatus: StatusCancelled,
		},
		{
			name:       "派送_已接单到派送中",
			current:    StatusConfirmed,
			action:     ActionDeliver,
			wantStatus: StatusDeliveryInProgress,
		},
		{
			name:       "完成_派送中到已完成",
			current:    StatusDeliveryInProgress,
			action:     ActionComplete,
			wantStatus: StatusCompleted,
		},
		{
			name:       "支付超时_待付款到已取消",
			current:    StatusPendingPayment,
			action:     ActionPaymentTimeout,
			wantStatus: StatusCancelled,
		},
		{
			name:       "派送超时_派送中到已完成",
			current:    StatusDeliveryInProgress,
			action:     ActionDeliveryTimeout,
			wantStatus: StatusCompleted,
		},
	}
	legal := make(map[[2]uint8]OrderStatus, len(testCases))
	for _, tc := range testCases {
		tc := tc
		legal[[2]uint8{tc.current.ToUint8(), uint8(tc.action)}] = tc.wantStatus
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := tc.current.Transit(tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantStatus, next)
		})
	}

	// 状态表之外的所有组合必须全部被拒绝
	t.Run("非法组合全部拒绝", func(t *testing.T) {
		t.Parallel()
		for _, status := range allStatuses {
			for _, action := range allActions {
				if _, ok := legal[[2]uint8{status.ToUint8(), uint8(action)}]; ok {
					continue
				}
				next, err := status.Transit(action)
				assert.ErrorIs(t, err, ErrIllegalTransition,
					"status=%d action=%d 应该被拒绝", status, action)
				assert.Zero(t, next)
			}
		}
	})
}

func TestOrderStatus_UserCancel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		current OrderStatus
		wantOK  bool
	}{
		{name: "待付款可以取消", current: StatusPendingPayment, wantOK: true},
		{name: "待接单可以取消", current: StatusToBeConfirmed, wantOK: true},
		{name: "已接单不可以取消", current: StatusConfirmed, wantOK: false},
		{name: "派送中不可以取消", current: StatusDeliveryInProgress, wantOK: false},
		{name: "已完成不可以取消", current: StatusCompleted, wantOK: false},
		{name: "已取消不可以再取消", current: StatusCancelled, wantOK: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			next, err := tc.current.Transit(ActionUserCancel)
			if tc.wantOK {
				assert.NoError(t, err)
				assert.Equal(t, StatusCancelled, next)
			} else {
				assert.ErrorIs(t, err, ErrIllegalTransition)
			}
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	for _, status := range allStatuses {
		terminal := status == StatusCompleted || status == StatusCancelled
		assert.Equal(t, terminal, status.IsTerminal())
	}
	// 终态之后任何动作都不合法
	for _, status := range []OrderStatus{StatusCompleted, StatusCancelled} {
		for _, action := range allActions {
			_, err := status.Transit(action)
			assert.ErrorIs(t, err, ErrIllegalTransition)
		}
	}
}
