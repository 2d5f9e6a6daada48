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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/cart/internal/web"
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

const testUID = int64(345)

func TestCartModule(t *testing.T) {
	suite.Run(t, new(CartModuleTestSuite))
}

type CartModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    cart.Service
}

func (s *CartModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := cart.InitModule(s.db)
	require.NoError(s.T(), err)
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *CartModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `shopping_cart_items`").Error
	require.NoError(s.T(), err)
}

func (s *CartModuleTestSuite) addItem(req web.AddCartItemReq) {
	t := s.T()
	request, err := http.NewRequest(http.MethodPost,
		"/shopping-cart/add", iox.NewJSONReader(req))
	require.NoError(t, err)
	request.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, request)
	require.Equal(t, 200, recorder.Code)
}

func (s *CartModuleTestSuite) listItems() []web.CartItem {
	t := s.T()
	request, err := http.NewRequest(http.MethodPost,
		"/shopping-cart/list", iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	request.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListCartItemsResp]()
	s.server.ServeHTTP(recorder, request)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data.Items
}

func (s *CartModuleTestSuite) TestHandler_AddItem() {
	t := s.T()
	// 同款加购两次只加数量
	s.addItem(web.AddCartItemReq{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800})
	s.addItem(web.AddCartItemReq{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800})
	// 口味不同算另一款
	s.addItem(web.AddCartItemReq{DishID: 1, Name: "宫保鸡丁", Flavor: "特辣", Price: 2800})

	items := s.listItems()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, "微辣", items[0].Flavor)
	assert.Equal(t, int64(1), items[1].Quantity)
	assert.Equal(t, "特辣", items[1].Flavor)
}

func (s *CartModuleTestSuite) TestHandler_SubItem() {
	t := s.T()
	s.addItem(web.AddCartItemReq{SetmealID: 3, Name: "商务套餐", Price: 4500})
	s.addItem(web.AddCartItemReq{SetmealID: 3, Name: "商务套餐", Price: 4500})

	sub := func() {
		request, err := http.NewRequest(http.MethodPost,
			"/shopping-cart/sub", iox.NewJSONReader(web.SubCartItemReq{SetmealID: 3}))
		require.NoError(t, err)
		request.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[any]()
		s.server.ServeHTTP(recorder, request)
		require.Equal(t, 200, recorder.Code)
	}

	sub()
	items := s.listItems()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Quantity)

	// 数量减到零直接移除
	sub()
	assert.Empty(t, s.listItems())
}

func (s *CartModuleTestSuite) TestHandler_CleanCart() {
	t := s.T()
	s.addItem(web.AddCartItemReq{DishID: 7, Name: "鱼香肉丝", Price: 2600})
	s.addItem(web.AddCartItemReq{SetmealID: 3, Name: "商务套餐", Price: 4500})

	request, err := http.NewRequest(http.MethodPost,
		"/shopping-cart/clean", iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	request.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, request)
	require.Equal(t, 200, recorder.Code)

	assert.Empty(t, s.listItems())
}

func (s *CartModuleTestSuite) TestService_AddItems() {
	t := s.T()
	err := s.svc.AddItems(context.Background(), testUID, []cart.CartItem{
		{DishID: 1, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
		{SetmealID: 3, Name: "商务套餐", Price: 4500, Quantity: 1},
	})
	require.NoError(t, err)

	items := s.listItems()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].Quantity)
}
