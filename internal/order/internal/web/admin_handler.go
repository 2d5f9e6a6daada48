package web

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[SearchOrdersReq](h.Search))
	g.POST("/detail", ginx.B[OrderIDReq](h.Detail))
	g.POST("/statistics", ginx.W(h.Statistics))
	g.POST("/confirm", ginx.B[OrderIDReq](h.Confirm))
	g.POST("/reject", ginx.B[RejectOrderReq](h.Reject))
	g.POST("/cancel", ginx.B[CancelOrderReq](h.Cancel))
	g.POST("/delivery", ginx.B[OrderIDReq](h.Deliver))
	g.POST("/complete", ginx.B[OrderIDReq](h.Complete))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Search(ctx *ginx.Context, req SearchOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.SearchOrders(ctx.Request.Context(), domain.OrderQuery{
		SN:        req.SN,
		UID:       req.UID,
		Phone:     req.Phone,
		Status:    domain.OrderStatus(req.Status),
		BeginTime: req.BeginTime,
		EndTime:   req.EndTime,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("检索订单失败: %w", err)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	order, err := h.svc.AdminOrderDetail(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{Data: toOrderVO(order)}, nil
}

func (h *AdminHandler) Statistics(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Statistics(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, fmt.Errorf("统计订单失败: %w", err)
	}
	return ginx.Result{
		Data: StatisticsResp{
			ToBeConfirmed:      stats.ToBeConfirmed,
			Confirmed:          stats.Confirmed,
			DeliveryInProgress: stats.DeliveryInProgress,
		},
	}, nil
}

func (h *AdminHandler) Confirm(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return h.transit(ctx, func() error {
		return h.svc.ConfirmOrder(ctx.Request.Context(), req.ID)
	}, "接单失败")
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req RejectOrderReq) (ginx.Result, error) {
	return h.transit(ctx, func() error {
		return h.svc.RejectOrder(ctx.Request.Context(), req.ID, req.Reason)
	}, "拒单失败")
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req CancelOrderReq) (ginx.Result, error) {
	return h.transit(ctx, func() error {
		return h.svc.CancelOrder(ctx.Request.Context(), req.ID, req.Reason)
	}, "取消订单失败")
}

func (h *AdminHandler) Deliver(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return h.transit(ctx, func() error {
		return h.svc.DeliverOrder(ctx.Request.Context(), req.ID)
	}, "派送订单失败")
}

func (h *AdminHandler) Complete(ctx *ginx.Context, req OrderIDReq) (ginx.Result, error) {
	return h.transit(ctx, func() error {
		return h.svc.CompleteOrder(ctx.Request.Context(), req.ID)
	}, "完成订单失败")
}

func (h *AdminHandler) transit(_ *ginx.Context, op func() error, errMsg string) (ginx.Result, error) {
	err := op()
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, domain.ErrIllegalTransition):
		return illegalTransitionResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("%s: %w", errMsg, err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
