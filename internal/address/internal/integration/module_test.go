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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/address/internal/errs"
	"github.com/ecodeclub/takeout/internal/address/internal/web"
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

const testUID = int64(456)

func TestAddressModule(t *testing.T) {
	suite.Run(t, new(AddressModuleTestSuite))
}

type AddressModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *AddressModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := address.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)

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

func (s *AddressModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `address_book`").Error
	require.NoError(s.T(), err)
}

func (s *AddressModuleTestSuite) post(path string, body any) *test.JSONResponseRecorder[web.Address] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Address]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder
}

func (s *AddressModuleTestSuite) save(req web.SaveAddressReq) int64 {
	t := s.T()
	request, err := http.NewRequest(http.MethodPost,
		"/address-book/save", iox.NewJSONReader(req))
	require.NoError(t, err)
	request.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, request)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(t, 0, res.Code)
	return res.Data
}

func (s *AddressModuleTestSuite) TestHandler_SaveAndDetail() {
	t := s.T()
	id := s.save(web.SaveAddressReq{
		Consignee:    "张三",
		Phone:        "13800001111",
		ProvinceName: "北京市",
		CityName:     "北京市",
		DistrictName: "海淀区",
		Detail:       "中关村大街1号",
		Label:        "公司",
	})
	require.Greater(t, id, int64(0))

	res := s.post("/address-book/detail", web.AddressIDReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "张三", res.Data.Consignee)
	assert.Equal(t, "公司", res.Data.Label)
	assert.False(t, res.Data.IsDefault)
}

func (s *AddressModuleTestSuite) TestHandler_DetailNotFound() {
	res := s.post("/address-book/detail", web.AddressIDReq{ID: 12345}).MustScan()
	assert.Equal(s.T(), errs.AddressNotFound.Code, res.Code)
}

func (s *AddressModuleTestSuite) TestHandler_SetDefault() {
	t := s.T()
	first := s.save(web.SaveAddressReq{
		Consignee: "张三", Phone: "13800001111",
		ProvinceName: "北京市", CityName: "北京市", DistrictName: "海淀区",
		Detail: "中关村大街1号",
	})
	second := s.save(web.SaveAddressReq{
		Consignee: "李四", Phone: "13800002222",
		ProvinceName: "上海市", CityName: "上海市", DistrictName: "浦东新区",
		Detail: "世纪大道100号",
	})

	// 还没有默认地址
	res := s.post("/address-book/default", struct{}{}).MustScan()
	assert.Equal(t, errs.AddressNotFound.Code, res.Code)

	res = s.post("/address-book/default/set", web.AddressIDReq{ID: first}).MustScan()
	require.Equal(t, 0, res.Code)
	res = s.post("/address-book/default", struct{}{}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, first, res.Data.ID)

	// 换默认地址后缓存要跟着失效
	res = s.post("/address-book/default/set", web.AddressIDReq{ID: second}).MustScan()
	require.Equal(t, 0, res.Code)
	res = s.post("/address-book/default", struct{}{}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, second, res.Data.ID)
	assert.Equal(t, "李四", res.Data.Consignee)
}

func (s *AddressModuleTestSuite) TestHandler_Delete() {
	t := s.T()
	id := s.save(web.SaveAddressReq{
		Consignee: "张三", Phone: "13800001111",
		ProvinceName: "北京市", CityName: "北京市", DistrictName: "海淀区",
		Detail: "中关村大街1号",
	})
	res := s.post("/address-book/delete", web.AddressIDReq{ID: id}).MustScan()
	require.Equal(t, 0, res.Code)

	res = s.post("/address-book/detail", web.AddressIDReq{ID: id}).MustScan()
	assert.Equal(t, errs.AddressNotFound.Code, res.Code)
}

func (s *AddressModuleTestSuite) TestHandler_List() {
	t := s.T()
	s.save(web.SaveAddressReq{
		Consignee: "张三", Phone: "13800001111",
		ProvinceName: "北京市", CityName: "北京市", DistrictName: "海淀区",
		Detail: "中关村大街1号",
	})
	s.save(web.SaveAddressReq{
		Consignee: "李四", Phone: "13800002222",
		ProvinceName: "上海市", CityName: "上海市", DistrictName: "浦东新区",
		Detail: "世纪大道100号",
	})

	request, err := http.NewRequest(http.MethodPost,
		"/address-book/list", iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	request.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListAddressResp]()
	s.server.ServeHTTP(recorder, request)
	require.Equal(t, 200, recorder.Code)
	assert.Len(t, recorder.MustScan().Data.Addresses, 2)
}
