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

package order

import (
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
	"github.com/ecodeclub/takeout/internal/order/internal/event/consumer"
	"github.com/ecodeclub/takeout/internal/order/internal/job"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Order        = domain.Order
	OrderItem    = domain.OrderItem
	OrderStatus  = domain.OrderStatus

	CloseTimeoutOrdersJob       = job.CloseTimeoutOrdersJob
	CompleteDeliveringOrdersJob = job.CompleteDeliveringOrdersJob
	PaymentConsumer             = consumer.PaymentConsumer
)

var ErrIllegalTransition = domain.ErrIllegalTransition

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
	// CloseJob 支付超时自动取消, CompleteJob 派送超时自动完成
	CloseJob    *CloseTimeoutOrdersJob
	CompleteJob *CompleteDeliveringOrdersJob
	// Consumer 消费支付成功消息
	Consumer *PaymentConsumer
}
