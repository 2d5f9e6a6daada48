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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/errs"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/integration/startup"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	"github.com/ecodeclub/takeout/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
	"github.com/ecodeclub/takeout/internal/test"
	testioc "github.com/ecodeclub/takeout/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	mq          mq.MQ
	module      *startup.Module
}

func (s *OrderModuleTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.module = module

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Order.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	module.Order.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.db = testioc.InitDB()
	s.mq = testioc.InitMQ()
}

func (s *OrderModuleTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_items", "shopping_cart_items", "address_book"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *OrderModuleTestSuite) seedAddress() int64 {
	id, err := s.module.Address.Svc.Save(context.Background(), address.Address{
		UID:          testUID,
		Consignee:    "张三",
		Phone:        "13800001111",
		ProvinceName: "北京市",
		CityName:     "北京市",
		DistrictName: "海淀区",
		Detail:       "中关村大街1号",
	})
	require.NoError(s.T(), err)
	return id
}

func (s *OrderModuleTestSuite) seedCart() {
	ctx := context.Background()
	err := s.module.Cart.Svc.AddItems(ctx, testUID, []cart.CartItem{
		{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
		{SetmealID: 3, Name: "商务套餐", Price: 4500, Quantity: 1},
	})
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) TestHandler_SubmitOrder() {
	t := s.T()
	addressID := s.seedAddress()
	s.seedCart()

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: "request-submit-1",
			AddressID: addressID,
			Remark:    "少放辣",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Len(t, resp.Data.SN, 32)
	assert.Equal(t, int64(2800*2+4500), resp.Data.Amount)
	assert.Greater(t, resp.Data.OrderTime, int64(0))

	// 订单和明细落库
	orderEntity, err := dao.NewOrderGORMDAO(s.db, s.module.Cart.Dao).
		FindOrderByID(context.Background(), resp.Data.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment.ToUint8(), orderEntity.Status)
	assert.Equal(t, "北京市北京市海淀区中关村大街1号", orderEntity.Address)

	items, err := s.module.Order.Svc.OrderDetail(context.Background(), testUID, resp.Data.OrderID)
	require.NoError(t, err)
	assert.Len(t, items.Items, 2)

	// 购物车在同一事务里被清空
	cartItems, err := s.module.Cart.Svc.ListItems(context.Background(), testUID)
	require.NoError(t, err)
	assert.Empty(t, cartItems)
}

func (s *OrderModuleTestSuite) TestHandler_SubmitOrderDuplicateRequest() {
	t := s.T()
	addressID := s.seedAddress()
	s.seedCart()

	submit := func() *test.JSONResponseRecorder[web.SubmitOrderResp] {
		req, err := http.NewRequest(http.MethodPost,
			"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
				RequestID: "request-dup-1",
				AddressID: addressID,
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.SubmitOrderResp]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	first := submit()
	require.Equal(t, 200, first.Code)

	second := submit()
	assert.Equal(t, 500, second.Code)
	assert.Equal(t, errs.DuplicateRequest.Code, second.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_SubmitOrderEmptyCart() {
	t := s.T()
	addressID := s.seedAddress()

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: "request-empty-cart-1",
			AddressID: addressID,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, errs.ShoppingCartEmpty.Code, recorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_SubmitOrderRollback() {
	t := s.T()
	addressID := s.seedAddress()
	s.seedCart()

	// 让明细落库在事务中途失败
	require.NoError(t, s.db.Exec("RENAME TABLE `order_items` TO `order_items_bak`").Error)
	defer func() {
		require.NoError(t, s.db.Exec("RENAME TABLE `order_items_bak` TO `order_items`").Error)
	}()

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: "request-rollback-1",
			AddressID: addressID,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)

	// 整个事务回滚, 订单没有落库
	var count int64
	require.NoError(t, s.db.WithContext(context.Background()).
		Model(&dao.Order{}).Count(&count).Error)
	assert.Zero(t, count)

	// 购物车原样保留
	cartItems, err := s.module.Cart.Svc.ListItems(context.Background(), testUID)
	require.NoError(t, err)
	assert.Len(t, cartItems, 2)
}

func (s *OrderModuleTestSuite) TestRepository_TransitionLosesRace() {
	t := s.T()
	id := s.insertOrder("sn-race-1", domain.StatusToBeConfirmed)

	orderDAO := dao.NewOrderGORMDAO(s.db, s.module.Cart.Dao)
	repo := repository.NewRepository(orderDAO)
	ctx := context.Background()

	// 两个竞争者基于同一个前置状态发起流转, 只有一个能成功
	err := repo.UpdateOrderStatus(ctx, id, domain.StatusToBeConfirmed, domain.StatusConfirmed)
	require.NoError(t, err)
	err = repo.CancelOrder(ctx, id, domain.StatusToBeConfirmed, domain.StatusCancelled, "用户取消", false)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	// 输的一方不会在订单上留下任何痕迹
	entity, err := orderDAO.FindOrderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed.ToUint8(), entity.Status)
	assert.Empty(t, entity.CancelReason)
	assert.Zero(t, entity.CancelTime)
}

func (s *OrderModuleTestSuite) TestHandler_CancelOrder() {
	svc := s.module.Order.Svc

	testCases := []struct {
		name     string
		status   domain.OrderStatus
		wantCode int
	}{
		{
			name:     "待接单可以取消",
			status:   domain.StatusToBeConfirmed,
			wantCode: 0,
		},
		{
			name:     "已接单不能取消",
			status:   domain.StatusConfirmed,
			wantCode: errs.IllegalTransition.Code,
		},
	}
	for idx, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			id := s.insertOrder(fmt.Sprintf("sn-cancel-%d", idx), tc.status)

			req, err := http.NewRequest(http.MethodPost,
				"/order/cancel", iox.NewJSONReader(web.OrderIDReq{ID: id}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)

			order, err := svc.AdminOrderDetail(context.Background(), id)
			require.NoError(t, err)
			if tc.wantCode == 0 {
				assert.Equal(t, domain.StatusCancelled, order.Status)
				assert.Equal(t, "用户取消", order.CancelReason)
			} else {
				assert.Equal(t, tc.status, order.Status)
			}
		})
	}
}

func (s *OrderModuleTestSuite) TestAdminHandler_ConfirmAndDeliver() {
	t := s.T()
	id := s.insertOrder("sn-admin-1", domain.StatusToBeConfirmed)

	post := func(path string, body any) *test.JSONResponseRecorder[any] {
		req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[any]()
		s.adminServer.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder
	}

	assert.Equal(t, 0, post("/order/confirm", web.OrderIDReq{ID: id}).MustScan().Code)
	assert.Equal(t, 0, post("/order/delivery", web.OrderIDReq{ID: id}).MustScan().Code)
	assert.Equal(t, 0, post("/order/complete", web.OrderIDReq{ID: id}).MustScan().Code)
	// 已完成是终态, 再接单被拒绝
	assert.Equal(t, errs.IllegalTransition.Code,
		post("/order/confirm", web.OrderIDReq{ID: id}).MustScan().Code)

	order, err := s.module.Order.Svc.AdminOrderDetail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
}

func (s *OrderModuleTestSuite) TestConsumer_PaymentSuccess() {
	t := s.T()
	s.insertOrderWithTime("sn-pay-1", domain.StatusPendingPayment, time.Now().UnixMilli())

	producer, err := s.mq.Producer(event.PaymentSuccessEventName)
	require.NoError(t, err)
	data, err := json.Marshal(event.PaymentSuccessEvent{OrderSN: "sn-pay-1"})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	err = s.module.Order.Consumer.Consume(context.Background())
	require.NoError(t, err)

	orderEntity, err := dao.NewOrderGORMDAO(s.db, s.module.Cart.Dao).
		FindOrderBySN(context.Background(), "sn-pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToBeConfirmed.ToUint8(), orderEntity.Status)
	assert.Equal(t, domain.PayStatusPaid.ToUint8(), orderEntity.PayStatus)

	// 重复投递不会二次流转
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
	err = s.module.Order.Consumer.Consume(context.Background())
	require.NoError(t, err)
}

func (s *OrderModuleTestSuite) TestJob_CloseTimeoutOrders() {
	t := s.T()
	expired := s.insertOrderWithTime("sn-job-close-1", domain.StatusPendingPayment,
		time.Now().Add(-time.Hour).UnixMilli())
	fresh := s.insertOrderWithTime("sn-job-close-2", domain.StatusPendingPayment,
		time.Now().UnixMilli())
	paid := s.insertOrderWithTime("sn-job-close-3", domain.StatusConfirmed,
		time.Now().Add(-time.Hour).UnixMilli())

	require.NoError(t, s.module.Order.CloseJob.Run(context.Background()))

	svc := s.module.Order.Svc
	expiredOrder, err := svc.AdminOrderDetail(context.Background(), expired)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, expiredOrder.Status)
	assert.Equal(t, "支付超时，自动取消", expiredOrder.CancelReason)

	freshOrder, err := svc.AdminOrderDetail(context.Background(), fresh)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment, freshOrder.Status)

	paidOrder, err := svc.AdminOrderDetail(context.Background(), paid)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, paidOrder.Status)
}

func (s *OrderModuleTestSuite) TestJob_CompleteDeliveringOrders() {
	t := s.T()
	timeout := s.insertOrderWithTime("sn-job-complete-1", domain.StatusDeliveryInProgress,
		time.Now().Add(-2*time.Hour).UnixMilli())
	delivering := s.insertOrderWithTime("sn-job-complete-2", domain.StatusDeliveryInProgress,
		time.Now().UnixMilli())

	require.NoError(t, s.module.Order.CompleteJob.Run(context.Background()))

	svc := s.module.Order.Svc
	timeoutOrder, err := svc.AdminOrderDetail(context.Background(), timeout)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, timeoutOrder.Status)

	deliveringOrder, err := svc.AdminOrderDetail(context.Background(), delivering)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeliveryInProgress, deliveringOrder.Status)
}

func (s *OrderModuleTestSuite) insertOrder(sn string, status domain.OrderStatus) int64 {
	return s.insertOrderWithTime(sn, status, time.Now().UnixMilli())
}

func (s *OrderModuleTestSuite) insertOrderWithTime(sn string, status domain.OrderStatus, orderTime int64) int64 {
	now := time.Now().UnixMilli()
	entity := dao.Order{
		SN:        sn,
		Uid:       testUID,
		Consignee: "张三",
		Phone:     "13800001111",
		Address:   "北京市北京市海淀区中关村大街1号",
		Amount:    10100,
		Status:    status.ToUint8(),
		OrderTime: orderTime,
		Ctime:     now,
		Utime:     now,
	}
	err := s.db.WithContext(context.Background()).Create(&entity).Error
	require.NoError(s.T(), err)
	return entity.Id
}
