package bindings_test

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolpath/quoterdeploy/bindings"
)

var (
	testFactory = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	testWETH9   = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
)

func Test_Bytecode(t *testing.T) {
	t.Parallel()

	bin := bindings.Bytecode()
	require.NotEmpty(t, bin)

	// Callers get independent copies of the template.
	bin[0] ^= 0xff
	assert.NotEqual(t, bin[0], bindings.Bytecode()[0])
}

func Test_PackConstructor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		factory common.Address
		weth9   common.Address
	}{
		{
			name:    "two distinct addresses",
			factory: testFactory,
			weth9:   testWETH9,
		},
		{
			name:    "zero factory is encodable",
			factory: common.Address{},
			weth9:   testWETH9,
		},
		{
			name:    "both zero",
			factory: common.Address{},
			weth9:   common.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args, err := bindings.PackConstructor(tt.factory, tt.weth9)
			require.NoError(t, err)

			// Two left-padded 32 byte words, factory first.
			require.Len(t, args, 64)
			assert.Equal(t, make([]byte, 12), args[:12])
			assert.Equal(t, tt.factory.Bytes(), args[12:32])
			assert.Equal(t, make([]byte, 12), args[32:44])
			assert.Equal(t, tt.weth9.Bytes(), args[44:64])
		})
	}
}

func Test_PackConstructor_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := bindings.PackConstructor(testFactory, testWETH9)
	require.NoError(t, err)

	second, err := bindings.PackConstructor(testFactory, testWETH9)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_InitCode_Layout(t *testing.T) {
	t.Parallel()

	initCode, err := bindings.InitCode(testFactory, testWETH9)
	require.NoError(t, err)

	bin := bindings.Bytecode()
	args, err := bindings.PackConstructor(testFactory, testWETH9)
	require.NoError(t, err)

	// Template first, arguments last, nothing in between.
	require.Len(t, initCode, len(bin)+len(args))
	assert.True(t, bytes.Equal(initCode[:len(bin)], bin))
	assert.True(t, bytes.Equal(initCode[len(bin):], args))
}

func Test_InitCode_DoesNotMutateTemplate(t *testing.T) {
	t.Parallel()

	before := bindings.Bytecode()

	_, err := bindings.InitCode(testFactory, testWETH9)
	require.NoError(t, err)

	assert.Equal(t, before, bindings.Bytecode())
}

func Test_MetaData_GetAbi(t *testing.T) {
	t.Parallel()

	parsed, err := bindings.PathQuoterMetaData.GetAbi()
	require.NoError(t, err)
	require.NotNil(t, parsed)

	require.Len(t, parsed.Constructor.Inputs, 2)
	assert.Equal(t, "address", parsed.Constructor.Inputs[0].Type.String())
	assert.Equal(t, "address", parsed.Constructor.Inputs[1].Type.String())

	for _, method := range []string{
		"factory", "WETH9", "quoteExactInput", "quoteExactInputSingle", "quoteExactOutputSingle", "quoteV2AmountOut",
	} {
		_, ok := parsed.Methods[method]
		assert.True(t, ok, "missing method %s", method)
	}
}
