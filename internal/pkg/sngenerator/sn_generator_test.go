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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	gen := NewGeneratorWith(
		func() int64 { return 1816500219635634176 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" },
	)

	testCases := []struct {
		name   string
		uid    int64
		suffix string
	}{
		{
			name:   "末四位不足补零",
			uid:    1,
			suffix: "0001",
		},
		{
			name:   "末四位截断",
			uid:    123456789,
			suffix: "6789",
		},
		{
			name:   "末四位全零",
			uid:    123450000,
			suffix: "0000",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sn := gen.Generate(tc.uid)
			assert.Len(t, sn, snLength)
			assert.Contains(t, sn, tc.suffix)
		})
	}
}

func TestGenerator_GenerateUnique(t *testing.T) {
	t.Parallel()

	gen, err := NewGenerator(1)
	require.NoError(t, err)

	const n = 1000
	sns := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		sn := gen.Generate(int64(i))
		assert.Len(t, sn, snLength)
		sns[sn] = struct{}{}
	}
	assert.Len(t, sns, n)
}
