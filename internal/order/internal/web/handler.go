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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/submit", ginx.BS[SubmitOrderReq](h.SubmitOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[OrderIDReq](h.OrderDetail))
	g.POST("/cancel", ginx.BS[OrderIDReq](h.CancelOrder))
	g.POST("/repeat", ginx.BS[OrderIDReq](h.RepeatOrder))
	g.POST("/remind", ginx.BS[OrderIDReq](h.RemindOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) SubmitOrder(ctx *ginx.Context, req SubmitOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return duplicateRequestResult, err
	}
	order, err := h.svc.SubmitOrder(ctx.Request.Context(), sess.Claims().Uid, req.AddressID, req.Remark)
	switch {
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, nil
	case errors.Is(err, service.ErrShoppingCartEmpty):
		return shoppingCartEmptyResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("提交订单失败: %w", err)
	}
	return ginx.Result{
		Data: SubmitOrderResp{
			OrderID:   order.ID,
			SN:        order.SN,
			Amount:    order.Amount,
			OrderTime: order.OrderTime,
		},
	}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), sess.Claims().Uid,
		domain.OrderStatus(req.Status), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) OrderDetail(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.OrderDetail(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UserCancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, domain.ErrIllegalTransition):
		return illegalTransitionResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RepeatOrder(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RepeatOrder(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("再来一单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemindOrder(ctx *ginx.Context, req OrderIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemindOrder(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("催单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := h.submitOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) submitOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:submit:%s", requestID)
}
