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

package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentConsumer 消费支付成功消息, 驱动订单从待付款流转到待接单
type PaymentConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	groupID := "order"
	consumer, err := q.Consumer(event.PaymentSuccessEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费支付成功消息失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt event.PaymentSuccessEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	err = c.svc.MarkOrderPaid(ctx, evt.OrderSN)
	// 支付侧可能重复投递, 订单已经不在待付款状态时直接确认消费掉
	if errors.Is(err, domain.ErrIllegalTransition) {
		c.logger.Warn("忽略重复的支付成功消息", elog.String("sn", evt.OrderSN))
		return nil
	}
	return err
}
