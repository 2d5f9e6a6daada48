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

package startup

import (
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/order"
	testioc "github.com/ecodeclub/takeout/internal/test/ioc"
	"github.com/google/wire"
)

// Module 集成测试会直接操作购物车和地址簿来铺设订单数据
type Module struct {
	Order   *order.Module
	Cart    *cart.Module
	Address *address.Module
}

func InitModule() (*Module, error) {
	wire.Build(
		testioc.BaseSet,
		cart.InitModule,
		address.InitModule,
		order.InitModule,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
