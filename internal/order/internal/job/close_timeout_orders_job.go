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
	"fmt"
	"time"

	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseTimeoutOrdersJob)(nil)

// CloseTimeoutOrdersJob 把超过支付时限仍未支付的订单自动取消。
// 单个订单取消失败只影响它自己, 记日志后继续处理同批次的其余订单
type CloseTimeoutOrdersJob struct {
	svc service.Service
	// timeout 支付时限, 下单之后超过该时长未支付即取消
	timeout time.Duration
	limit   int
	logger  *elog.Component
}

func NewCloseTimeoutOrdersJob(svc service.Service, timeout time.Duration, limit int) *CloseTimeoutOrdersJob {
	return &CloseTimeoutOrdersJob{
		svc:     svc,
		timeout: timeout,
		limit:   limit,
		logger:  elog.DefaultLogger,
	}
}

func (c *CloseTimeoutOrdersJob) Name() string {
	return "CloseTimeoutOrdersJob"
}

func (c *CloseTimeoutOrdersJob) Run(ctx context.Context) error {
	orderedBefore := time.Now().Add(-c.timeout).UnixMilli()
	// 取消成功的订单会离开待付款状态, 翻页只需要跳过取消失败的
	var offset int
	for {
		orders, err := c.svc.ListTimeoutOrders(ctx, domain.StatusPendingPayment, orderedBefore, offset, c.limit)
		if err != nil {
			return fmt.Errorf("捞取超时未支付订单失败: %w", err)
		}
		for _, order := range orders {
			err = c.svc.CancelTimeoutOrder(ctx, order)
			if err == nil {
				continue
			}
			// 用户恰好在扫描间隙完成了支付, 跳过
			if errors.Is(err, domain.ErrIllegalTransition) {
				continue
			}
			offset++
			c.logger.Warn("自动取消超时订单失败",
				elog.FieldErr(err),
				elog.Int64("oid", order.ID),
				elog.String("sn", order.SN))
		}
		if len(orders) < c.limit {
			return nil
		}
	}
}
