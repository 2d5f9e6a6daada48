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

package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/address/internal/domain"
	"github.com/ecodeclub/takeout/internal/address/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/address-book")
	g.POST("/save", ginx.BS[SaveAddressReq](h.Save))
	g.POST("/update", ginx.BS[SaveAddressReq](h.Update))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[AddressIDReq](h.Detail))
	g.POST("/default", ginx.S(h.Default))
	g.POST("/default/set", ginx.BS[AddressIDReq](h.SetDefault))
	g.POST("/delete", ginx.BS[AddressIDReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	if err != nil {
		return systemErrorResult, fmt.Errorf("新增地址失败: %w", err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveAddressReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), h.toDomain(req, sess.Claims().Uid))
	if err != nil {
		return systemErrorResult, fmt.Errorf("修改地址失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addrs, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询地址列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListAddressResp{
			Addresses: slice.Map(addrs, func(idx int, src domain.Address) Address {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	addr, err := h.svc.Detail(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询地址失败: %w", err)
	}
	return ginx.Result{Data: h.toVO(addr)}, nil
}

func (h *Handler) Default(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addr, err := h.svc.Default(ctx.Request.Context(), sess.Claims().Uid)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询默认地址失败: %w", err)
	}
	return ginx.Result{Data: h.toVO(addr)}, nil
}

func (h *Handler) SetDefault(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetDefault(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrAddressNotFound) {
		return addressNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("设置默认地址失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req AddressIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除地址失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(req SaveAddressReq, uid int64) domain.Address {
	return domain.Address{
		ID:           req.ID,
		UID:          uid,
		Consignee:    req.Consignee,
		Sex:          req.Sex,
		Phone:        req.Phone,
		ProvinceName: req.ProvinceName,
		CityName:     req.CityName,
		DistrictName: req.DistrictName,
		Detail:       req.Detail,
		Label:        req.Label,
	}
}

func (h *Handler) toVO(addr domain.Address) Address {
	return Address{
		ID:           addr.ID,
		Consignee:    addr.Consignee,
		Sex:          addr.Sex,
		Phone:        addr.Phone,
		ProvinceName: addr.ProvinceName,
		CityName:     addr.CityName,
		DistrictName: addr.DistrictName,
		Detail:       addr.Detail,
		Label:        addr.Label,
		IsDefault:    addr.IsDefault,
	}
}
