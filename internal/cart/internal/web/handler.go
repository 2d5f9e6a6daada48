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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/cart/internal/domain"
	"github.com/ecodeclub/takeout/internal/cart/internal/service"
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
	g := server.Group("/shopping-cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.AddItem))
	g.POST("/sub", ginx.BS[SubCartItemReq](h.SubItem))
	g.POST("/list", ginx.S(h.ListItems))
	g.POST("/clean", ginx.S(h.CleanCart))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) AddItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, domain.CartItem{
		DishID:    req.DishID,
		SetmealID: req.SetmealID,
		Name:      req.Name,
		Image:     req.Image,
		Flavor:    req.Flavor,
		Price:     req.Price,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("加购失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SubItem(ctx *ginx.Context, req SubCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, domain.CartItem{
		DishID:    req.DishID,
		SetmealID: req.SetmealID,
		Flavor:    req.Flavor,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("减购失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListItems(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.ListItems(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	return ginx.Result{
		Data: ListCartItemsResp{
			Items: slice.Map(items, func(idx int, src domain.CartItem) CartItem {
				return CartItem{
					DishID:    src.DishID,
					SetmealID: src.SetmealID,
					Name:      src.Name,
					Image:     src.Image,
					Flavor:    src.Flavor,
					Price:     src.Price,
					Quantity:  src.Quantity,
				}
			}),
		},
	}, nil
}

func (h *Handler) CleanCart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.CleanCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
