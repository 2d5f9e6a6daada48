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

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

// IsTerminal 终态订单不再参与任何流转
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

const (
	StatusPendingPayment     OrderStatus = 1
	StatusToBeConfirmed      OrderStatus = 2
	StatusConfirmed          OrderStatus = 3
	StatusDeliveryInProgress OrderStatus = 4
	StatusCompleted          OrderStatus = 5
	StatusCancelled          OrderStatus = 6
)

type PayStatus uint8

func (s PayStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PayStatusUnpaid   PayStatus = 0
	PayStatusPaid     PayStatus = 1
	PayStatusRefunded PayStatus = 2
)

type Order struct {
	ID int64
	// SN 对外可见的订单号, 下单时生成, 之后不变
	SN  string
	UID int64
	// 下单时从地址簿拷贝的快照, 不回源
	Consignee string
	Phone     string
	Address   string
	// Amount 订单总金额;单位为分
	Amount    int64
	Status    OrderStatus
	PayStatus PayStatus
	// OrderTime 下单时间, 创建后不再变化
	OrderTime       int64
	CheckoutTime    int64
	CancelReason    string
	RejectionReason string
	CancelTime      int64
	Remark          string
	Items           []OrderItem
	Ctime           int64
	Utime           int64
}

// OrderItem 下单时从购物车拷贝的明细快照, 创建后不可变
type OrderItem struct {
	OrderID   int64
	DishID    int64
	SetmealID int64
	Name      string
	Image     string
	Flavor    string
	// Price 单价;单位为分
	Price    int64
	Quantity int64
}
