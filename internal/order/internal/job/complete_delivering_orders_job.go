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

var _ ecron.NamedJob = (*CompleteDeliveringOrdersJob)(nil)

// CompleteDeliveringOrdersJob 把长时间停留在派送中的订单自动置为已完成,
// 兜底骑手送达后忘记点完成的情况
type CompleteDeliveringOrdersJob struct {
	svc service.Service
	// timeout 派送时限, 下单之后超过该时长仍在派送中即视为已送达
	timeout time.Duration
	limit   int
	logger  *elog.Component
}

func NewCompleteDeliveringOrdersJob(svc service.Service, timeout time.Duration, limit int) *CompleteDeliveringOrdersJob {
	return &CompleteDeliveringOrdersJob{
		svc:     svc,
		timeout: timeout,
		limit:   limit,
		logger:  elog.DefaultLogger,
	}
}

func (c *CompleteDeliveringOrdersJob) Name() string {
	return "CompleteDeliveringOrdersJob"
}

func (c *CompleteDeliveringOrdersJob) Run(ctx context.Context) error {
	orderedBefore := time.Now().Add(-c.timeout).UnixMilli()
	var offset int
	for {
		orders, err := c.svc.ListTimeoutOrders(ctx, domain.StatusDeliveryInProgress, orderedBefore, offset, c.limit)
		if err != nil {
			return fmt.Errorf("捞取超时未完成订单失败: %w", err)
		}
		for _, order := range orders {
			err = c.svc.CompleteTimeoutOrder(ctx, order)
			if err == nil {
				continue
			}
			// 商家恰好在扫描间隙手动点了完成, 跳过
			if errors.Is(err, domain.ErrIllegalTransition) {
				continue
			}
			offset++
			c.logger.Warn("自动完成超时订单失败",
				elog.FieldErr(err),
				elog.Int64("oid", order.ID),
				elog.String("sn", order.SN))
		}
		if len(orders) < c.limit {
			return nil
		}
	}
}
