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

package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	OrderNotFound     = ErrorCode{Code: 502002, Msg: "订单不存在"}
	ShoppingCartEmpty = ErrorCode{Code: 502003, Msg: "购物车为空, 不能下单"}
	AddressNotFound   = ErrorCode{Code: 502004, Msg: "收货地址不存在"}
	IllegalTransition = ErrorCode{Code: 502005, Msg: "当前订单状态不允许该操作"}
	DuplicateRequest  = ErrorCode{Code: 502006, Msg: "重复请求"}
)
