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

//go:build wireinject

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order/internal/event/consumer"
	"github.com/ecodeclub/takeout/internal/order/internal/event/producer"
	"github.com/ecodeclub/takeout/internal/order/internal/job"
	"github.com/ecodeclub/takeout/internal/order/internal/repository"
	"github.com/ecodeclub/takeout/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeout/internal/order/internal/service"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
	"github.com/ecodeclub/takeout/internal/pkg/sngenerator"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, cache ecache.Cache, q mq.MQ,
	cartModule *cart.Module, addressModule *address.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		initSNGenerator,
		initCloseTimeoutOrdersJob,
		initCompleteDeliveringOrdersJob,
		repository.NewRepository,
		service.NewService,
		producer.NewOrderStatusEventProducer,
		producer.NewReminderEventProducer,
		consumer.NewPaymentConsumer,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*cart.Module), "Svc", "Dao"),
		wire.FieldsOf(new(*address.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component, cartDAO cart.DAO) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db, cartDAO)
}

func initSNGenerator() *sngenerator.Generator {
	gen, err := sngenerator.NewGenerator(econf.GetInt64("snowflake.nodeID"))
	if err != nil {
		panic(err)
	}
	return gen
}

func initCloseTimeoutOrdersJob(svc service.Service) *job.CloseTimeoutOrdersJob {
	return job.NewCloseTimeoutOrdersJob(svc, 15*time.Minute, 100)
}

func initCompleteDeliveringOrdersJob(svc service.Service) *job.CompleteDeliveringOrdersJob {
	return job.NewCompleteDeliveringOrdersJob(svc, time.Hour, 100)
}
