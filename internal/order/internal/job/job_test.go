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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	ordermocks "github.com/ecodeclub/takeout/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCloseTimeoutOrdersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("单个订单失败不影响同批次其余订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		orders := []domain.Order{
			{ID: 1, SN: "sn-1", Status: domain.StatusPendingPayment},
			{ID: 2, SN: "sn-2", Status: domain.StatusPendingPayment},
			{ID: 3, SN: "sn-3", Status: domain.StatusPendingPayment},
		}
		svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusPendingPayment,
			gomock.Any(), 0, 10).Return(orders, nil)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), orders[0]).Return(nil)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), orders[1]).
			Return(errors.New("db down"))
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), orders[2]).Return(nil)

		j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 10)
		assert.NoError(t, j.Run(context.Background()))
	})

	t.Run("扫描间隙完成支付的订单直接跳过", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		orders := []domain.Order{
			{ID: 1, SN: "sn-1", Status: domain.StatusPendingPayment},
		}
		svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusPendingPayment,
			gomock.Any(), 0, 10).Return(orders, nil)
		svc.EXPECT().CancelTimeoutOrder(gomock.Any(), orders[0]).
			Return(domain.ErrIllegalTransition)

		j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 10)
		assert.NoError(t, j.Run(context.Background()))
	})

	t.Run("翻页跳过取消失败的订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		page1 := []domain.Order{
			{ID: 1, SN: "sn-1", Status: domain.StatusPendingPayment},
			{ID: 2, SN: "sn-2", Status: domain.StatusPendingPayment},
		}
		page2 := []domain.Order{
			{ID: 3, SN: "sn-3", Status: domain.StatusPendingPayment},
		}
		gomock.InOrder(
			svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusPendingPayment,
				gomock.Any(), 0, 2).Return(page1, nil),
			svc.EXPECT().CancelTimeoutOrder(gomock.Any(), page1[0]).
				Return(errors.New("db down")),
			svc.EXPECT().CancelTimeoutOrder(gomock.Any(), page1[1]).Return(nil),
			// 失败的那一条还留在待付款里, 下一页从 offset=1 开始
			svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusPendingPayment,
				gomock.Any(), 1, 2).Return(page2, nil),
			svc.EXPECT().CancelTimeoutOrder(gomock.Any(), page2[0]).Return(nil),
		)

		j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 2)
		assert.NoError(t, j.Run(context.Background()))
	})

	t.Run("捞取失败任务报错", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusPendingPayment,
			gomock.Any(), 0, 10).Return(nil, errors.New("db down"))

		j := NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 10)
		assert.Error(t, j.Run(context.Background()))
	})
}

func TestCompleteDeliveringOrdersJob_Run(t *testing.T) {
	t.Parallel()

	t.Run("超时派送中的订单自动完成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		orders := []domain.Order{
			{ID: 1, SN: "sn-1", Status: domain.StatusDeliveryInProgress},
			{ID: 2, SN: "sn-2", Status: domain.StatusDeliveryInProgress},
		}
		svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusDeliveryInProgress,
			gomock.Any(), 0, 10).Return(orders, nil)
		svc.EXPECT().CompleteTimeoutOrder(gomock.Any(), orders[0]).Return(nil)
		svc.EXPECT().CompleteTimeoutOrder(gomock.Any(), orders[1]).Return(nil)

		j := NewCompleteDeliveringOrdersJob(svc, time.Hour, 10)
		assert.NoError(t, j.Run(context.Background()))
	})

	t.Run("商家手动完成的订单直接跳过", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := ordermocks.NewMockService(ctrl)

		orders := []domain.Order{
			{ID: 1, SN: "sn-1", Status: domain.StatusDeliveryInProgress},
		}
		svc.EXPECT().ListTimeoutOrders(gomock.Any(), domain.StatusDeliveryInProgress,
			gomock.Any(), 0, 10).Return(orders, nil)
		svc.EXPECT().CompleteTimeoutOrder(gomock.Any(), orders[0]).
			Return(domain.ErrIllegalTransition)

		j := NewCompleteDeliveringOrdersJob(svc, time.Hour, 10)
		assert.NoError(t, j.Run(context.Background()))
	})
}
