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

package sngenerator

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

// IDGenerateFunc 生成全局唯一的数字 ID
type IDGenerateFunc func() int64

// PaddingGenerateFunc 生成补齐订单号长度的随机串
type PaddingGenerateFunc func() string

// Generator 订单号生成器。
// 订单号 = snowflake ID + 用户 ID 末四位 + 随机串, 截断到固定 32 位。
// snowflake 部分保证并发下单不冲突, 用户 ID 末四位方便客服按号段排查问题。
type Generator struct {
	idGenFunc  IDGenerateFunc
	padGenFunc PaddingGenerateFunc
}

func NewGeneratorWith(idGen IDGenerateFunc, padGen PaddingGenerateFunc) *Generator {
	return &Generator{
		idGenFunc:  idGen,
		padGenFunc: padGen,
	}
}

// NewGenerator nodeID 取值 [0, 1023], 多实例部署时每个实例配置不同的值
func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("初始化 snowflake 节点失败: %w", err)
	}
	return NewGeneratorWith(
		func() int64 { return node.Generate().Int64() },
		func() string { return shortuuid.New() },
	), nil
}

func (g *Generator) Generate(uid int64) string {
	sn := fmt.Sprintf("%d%04d%s", g.idGenFunc(), uid%10000, g.padGenFunc())
	return sn[:snLength]
}
