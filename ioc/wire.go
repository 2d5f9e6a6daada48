//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		cart.InitModule,
		address.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*address.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CloseJob", "CompleteJob", "Consumer"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
