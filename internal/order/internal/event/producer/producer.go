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

package producer

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/order/internal/event"
	"github.com/ecodeclub/takeout/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/producer.mock.go OrderStatusEventProducer,ReminderEventProducer
type OrderStatusEventProducer interface {
	Produce(ctx context.Context, evt event.OrderStatusEvent) error
}

type ReminderEventProducer interface {
	Produce(ctx context.Context, evt event.ReminderEvent) error
}

func NewOrderStatusEventProducer(q mq.MQ) (OrderStatusEventProducer, error) {
	return mqx.NewGeneralProducer[event.OrderStatusEvent](q, event.OrderStatusEventName)
}

func NewReminderEventProducer(q mq.MQ) (ReminderEventProducer, error) {
	return mqx.NewGeneralProducer[event.ReminderEvent](q, event.ReminderEventName)
}
