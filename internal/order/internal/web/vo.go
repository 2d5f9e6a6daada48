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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/takeout/internal/order/internal/domain"
)

type SubmitOrderReq struct {
	// RequestID 客户端生成, 用于提交接口的幂等去重
	RequestID string `json:"requestID"`
	AddressID int64  `json:"addressID"`
	Remark    string `json:"remark"`
}

type SubmitOrderResp struct {
	OrderID   int64  `json:"orderID"`
	SN        string `json:"sn"`
	Amount    int64  `json:"amount"`
	OrderTime int64  `json:"orderTime"`
}

type ListOrdersReq struct {
	// Status 0 表示不过滤
	Status uint8 `json:"status"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type OrderIDReq struct {
	ID int64 `json:"id"`
}

type RejectOrderReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type CancelOrderReq struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

type SearchOrdersReq struct {
	SN        string `json:"sn"`
	UID       int64  `json:"uid"`
	Phone     string `json:"phone"`
	Status    uint8  `json:"status"`
	BeginTime int64  `json:"beginTime"`
	EndTime   int64  `json:"endTime"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type StatisticsResp struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

type Order struct {
	ID              int64       `json:"id"`
	SN              string      `json:"sn"`
	Status          uint8       `json:"status"`
	PayStatus       uint8       `json:"payStatus"`
	Amount          int64       `json:"amount"`
	Consignee       string      `json:"consignee"`
	Phone           string      `json:"phone"`
	Address         string      `json:"address"`
	OrderTime       int64       `json:"orderTime"`
	CheckoutTime    int64       `json:"checkoutTime,omitempty"`
	CancelReason    string      `json:"cancelReason,omitempty"`
	RejectionReason string      `json:"rejectionReason,omitempty"`
	CancelTime      int64       `json:"cancelTime,omitempty"`
	Remark          string      `json:"remark,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	DishID    int64  `json:"dishID,omitempty"`
	SetmealID int64  `json:"setmealID,omitempty"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Flavor    string `json:"flavor,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

func toOrderVO(src domain.Order) Order {
	return Order{
		ID:              src.ID,
		SN:              src.SN,
		Status:          src.Status.ToUint8(),
		PayStatus:       src.PayStatus.ToUint8(),
		Amount:          src.Amount,
		Consignee:       src.Consignee,
		Phone:           src.Phone,
		Address:         src.Address,
		OrderTime:       src.OrderTime,
		CheckoutTime:    src.CheckoutTime,
		CancelReason:    src.CancelReason,
		RejectionReason: src.RejectionReason,
		CancelTime:      src.CancelTime,
		Remark:          src.Remark,
		Items: slice.Map(src.Items, func(idx int, item domain.OrderItem) OrderItem {
			return OrderItem{
				DishID:    item.DishID,
				SetmealID: item.SetmealID,
				Name:      item.Name,
				Image:     item.Image,
				Flavor:    item.Flavor,
				Price:     item.Price,
				Quantity:  item.Quantity,
			}
		}),
	}
}
