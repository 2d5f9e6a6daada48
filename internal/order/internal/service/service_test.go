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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/takeout/internal/address"
	addressmocks "github.com/ecodeclub/takeout/internal/address/mocks"
	"github.com/ecodeclub/takeout/internal/cart"
	cartmocks "github.com/ecodeclub/takeout/internal/cart/mocks"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/takeout/internal/order/internal/event/mocks"
	repomocks "github.com/ecodeclub/takeout/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/takeout/internal/pkg/sngenerator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const (
	testUID       = int64(2024)
	testAddressID = int64(7)
	testOrderID   = int64(99)
	testSN        = "18165002196356341760001nUfojcH2M"
)

type testDeps struct {
	repo             *repomocks.MockOrderRepository
	cartSvc          *cartmocks.MockService
	addressSvc       *addressmocks.MockService
	statusProducer   *evtmocks.MockOrderStatusEventProducer
	reminderProducer *evtmocks.MockReminderEventProducer
}

func newTestService(ctrl *gomock.Controller) (Service, testDeps) {
	deps := testDeps{
		repo:             repomocks.NewMockOrderRepository(ctrl),
		cartSvc:          cartmocks.NewMockService(ctrl),
		addressSvc:       addressmocks.NewMockService(ctrl),
		statusProducer:   evtmocks.NewMockOrderStatusEventProducer(ctrl),
		reminderProducer: evtmocks.NewMockReminderEventProducer(ctrl),
	}
	snGen := sngenerator.NewGeneratorWith(
		func() int64 { return 1816500219635634176 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" },
	)
	svc := NewService(deps.repo, deps.cartSvc, deps.addressSvc, snGen,
		deps.statusProducer, deps.reminderProducer)
	return svc, deps
}

func testAddress() address.Address {
	return address.Address{
		ID:           testAddressID,
		UID:          testUID,
		Consignee:    "张三",
		Phone:        "13800001111",
		ProvinceName: "北京市",
		CityName:     "北京市",
		DistrictName: "海淀区",
		Detail:       "中关村大街1号",
	}
}

func TestService_SubmitOrder(t *testing.T) {
	t.Parallel()

	t.Run("下单成功_明细金额和快照正确", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.addressSvc.EXPECT().Detail(gomock.Any(), testUID, testAddressID).
			Return(testAddress(), nil)
		deps.cartSvc.EXPECT().ListItems(gomock.Any(), testUID).
			Return([]cart.CartItem{
				{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
				{SetmealID: 3, Name: "商务套餐", Price: 4500, Quantity: 1},
			}, nil)
		deps.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
				assert.Equal(t, testUID, order.UID)
				assert.NotEmpty(t, order.SN)
				assert.Equal(t, "张三", order.Consignee)
				assert.Equal(t, "13800001111", order.Phone)
				assert.Equal(t, "北京市北京市海淀区中关村大街1号", order.Address)
				assert.Equal(t, int64(2800*2+4500), order.Amount)
				assert.Equal(t, domain.StatusPendingPayment, order.Status)
				assert.Equal(t, domain.PayStatusUnpaid, order.PayStatus)
				require.Len(t, order.Items, 2)
				assert.Equal(t, int64(2), order.Items[0].Quantity)
				assert.Equal(t, "商务套餐", order.Items[1].Name)
				order.ID = testOrderID
				return order, nil
			})
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt event.OrderStatusEvent) error {
				assert.Equal(t, domain.StatusPendingPayment.ToUint8(), evt.Status)
				return nil
			})

		order, err := svc.SubmitOrder(context.Background(), testUID, testAddressID, "少放辣")
		require.NoError(t, err)
		assert.Equal(t, testOrderID, order.ID)
		assert.Equal(t, "少放辣", order.Remark)
	})

	t.Run("地址不存在_下单失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.addressSvc.EXPECT().Detail(gomock.Any(), testUID, testAddressID).
			Return(address.Address{}, ErrAddressNotFound)

		_, err := svc.SubmitOrder(context.Background(), testUID, testAddressID, "")
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})

	t.Run("购物车为空_下单失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.addressSvc.EXPECT().Detail(gomock.Any(), testUID, testAddressID).
			Return(testAddress(), nil)
		deps.cartSvc.EXPECT().ListItems(gomock.Any(), testUID).
			Return([]cart.CartItem{}, nil)

		_, err := svc.SubmitOrder(context.Background(), testUID, testAddressID, "")
		assert.ErrorIs(t, err, ErrShoppingCartEmpty)
	})
}

func TestService_MarkOrderPaid(t *testing.T) {
	t.Parallel()

	t.Run("支付成功_待付款流转到待接单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), testSN).
			Return(domain.Order{ID: testOrderID, SN: testSN, UID: testUID,
				Status: domain.StatusPendingPayment}, nil)
		deps.repo.EXPECT().MarkOrderPaid(gomock.Any(), testOrderID,
			domain.StatusPendingPayment, domain.StatusToBeConfirmed).Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), event.OrderStatusEvent{
			OrderSN: testSN,
			UID:     testUID,
			Status:  domain.StatusToBeConfirmed.ToUint8(),
		}).Return(nil)

		err := svc.MarkOrderPaid(context.Background(), testSN)
		assert.NoError(t, err)
	})

	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), testSN).
			Return(domain.Order{}, gorm.ErrRecordNotFound)

		err := svc.MarkOrderPaid(context.Background(), testSN)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("订单已不在待付款_拒绝重复流转", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderBySN(gomock.Any(), testSN).
			Return(domain.Order{ID: testOrderID, SN: testSN,
				Status: domain.StatusToBeConfirmed}, nil)

		err := svc.MarkOrderPaid(context.Background(), testSN)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	})
}

func TestService_UserCancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("待接单可以取消_已支付触发退款", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByUIDAndID(gomock.Any(), testUID, testOrderID).
			Return(domain.Order{ID: testOrderID, SN: testSN, UID: testUID,
				Status: domain.StatusToBeConfirmed, PayStatus: domain.PayStatusPaid}, nil)
		deps.repo.EXPECT().CancelOrder(gomock.Any(), testOrderID,
			domain.StatusToBeConfirmed, domain.StatusCancelled, "用户取消", true).Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.UserCancelOrder(context.Background(), testUID, testOrderID)
		assert.NoError(t, err)
	})

	t.Run("商家已接单_用户不能取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByUIDAndID(gomock.Any(), testUID, testOrderID).
			Return(domain.Order{ID: testOrderID, UID: testUID,
				Status: domain.StatusConfirmed}, nil)

		err := svc.UserCancelOrder(context.Background(), testUID, testOrderID)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	})

	t.Run("并发修改_前置状态失效不发事件", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByUIDAndID(gomock.Any(), testUID, testOrderID).
			Return(domain.Order{ID: testOrderID, UID: testUID,
				Status: domain.StatusPendingPayment}, nil)
		// 读取之后订单被别的请求改走了, 更新的前置条件不再成立
		deps.repo.EXPECT().CancelOrder(gomock.Any(), testOrderID,
			domain.StatusPendingPayment, domain.StatusCancelled, "用户取消", false).
			Return(domain.ErrIllegalTransition)

		err := svc.UserCancelOrder(context.Background(), testUID, testOrderID)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	})
}

func TestService_TimeoutTransitions(t *testing.T) {
	t.Parallel()

	t.Run("支付超时自动取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		order := domain.Order{ID: testOrderID, SN: testSN, UID: testUID,
			Status: domain.StatusPendingPayment}
		deps.repo.EXPECT().CancelOrder(gomock.Any(), testOrderID,
			domain.StatusPendingPayment, domain.StatusCancelled, "支付超时，自动取消", false).
			Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.CancelTimeoutOrder(context.Background(), order)
		assert.NoError(t, err)
	})

	t.Run("派送超时自动完成", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		order := domain.Order{ID: testOrderID, SN: testSN, UID: testUID,
			Status: domain.StatusDeliveryInProgress, PayStatus: domain.PayStatusPaid}
		deps.repo.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderID,
			domain.StatusDeliveryInProgress, domain.StatusCompleted).Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.CompleteTimeoutOrder(context.Background(), order)
		assert.NoError(t, err)
	})

	t.Run("已取消的订单不会被超时任务再取消", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, _ := newTestService(ctrl)

		order := domain.Order{ID: testOrderID, Status: domain.StatusCancelled}
		err := svc.CancelTimeoutOrder(context.Background(), order)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	})
}

func TestService_RepeatOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc, deps := newTestService(ctrl)

	deps.repo.EXPECT().FindOrderByUIDAndID(gomock.Any(), testUID, testOrderID).
		Return(domain.Order{ID: testOrderID, UID: testUID,
			Status: domain.StatusCompleted}, nil)
	deps.repo.EXPECT().FindOrderItems(gomock.Any(), testOrderID).
		Return([]domain.OrderItem{
			{OrderID: testOrderID, DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
		}, nil)
	deps.cartSvc.EXPECT().AddItems(gomock.Any(), testUID, []cart.CartItem{
		{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
	}).Return(nil)

	err := svc.RepeatOrder(context.Background(), testUID, testOrderID)
	assert.NoError(t, err)
}

func TestService_AdminTransitions(t *testing.T) {
	t.Parallel()

	t.Run("接单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByID(gomock.Any(), testOrderID).
			Return(domain.Order{ID: testOrderID, SN: testSN,
				Status: domain.StatusToBeConfirmed}, nil)
		deps.repo.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderID,
			domain.StatusToBeConfirmed, domain.StatusConfirmed).Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.ConfirmOrder(context.Background(), testOrderID))
	})

	t.Run("拒单并退款", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByID(gomock.Any(), testOrderID).
			Return(domain.Order{ID: testOrderID, SN: testSN,
				Status: domain.StatusToBeConfirmed, PayStatus: domain.PayStatusPaid}, nil)
		deps.repo.EXPECT().RejectOrder(gomock.Any(), testOrderID,
			domain.StatusToBeConfirmed, domain.StatusCancelled, "菜品售罄", true).Return(nil)
		deps.statusProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.RejectOrder(context.Background(), testOrderID, "菜品售罄"))
	})

	t.Run("待付款不能派送", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, deps := newTestService(ctrl)

		deps.repo.EXPECT().FindOrderByID(gomock.Any(), testOrderID).
			Return(domain.Order{ID: testOrderID,
				Status: domain.StatusPendingPayment}, nil)

		err := svc.DeliverOrder(context.Background(), testOrderID)
		assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	})
}
