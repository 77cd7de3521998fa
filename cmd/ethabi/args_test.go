package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/ethabi/accounts/abi"
)

func mustType(t *testing.T, s string, components []abi.ArgumentMarshaling) abi.Type {
	t.Helper()
	typ, err := abi.NewType(s, "", components)
	require.NoError(t, err)
	return typ
}

func TestRawArg(t *testing.T) {
	assert.Equal(t, `42`, string(rawArg("42")))
	assert.Equal(t, `"0xabc"`, string(rawArg(`"0xabc"`)))
	assert.Equal(t, `"0xabc"`, string(rawArg("0xabc")))
	assert.Equal(t, `"hello world"`, string(rawArg("hello world")))
	assert.Equal(t, `[1,2]`, string(rawArg("[1,2]")))
}

func TestConvertArg(t *testing.T) {
	uint256 := mustType(t, "uint256", nil)

	v, err := convertArg(uint256, rawArg("1000"))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), v)

	v, err = convertArg(uint256, rawArg(`"0x3e8"`))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1000), v)

	v, err = convertArg(mustType(t, "int8", nil), rawArg("-5"))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(-5), v)

	_, err = convertArg(uint256, rawArg("1.5"))
	assert.ErrorContains(t, err, "invalid integer")
	_, err = convertArg(uint256, rawArg("true"))
	assert.ErrorContains(t, err, "expected number")

	v, err = convertArg(mustType(t, "bool", nil), rawArg("true"))
	require.NoError(t, err)
	assert.Equal(t, true, v)
	_, err = convertArg(mustType(t, "bool", nil), rawArg("1"))
	assert.Error(t, err)

	v, err = convertArg(mustType(t, "address", nil), rawArg(alice))
	require.NoError(t, err)
	assert.Equal(t, alice, v)

	v, err = convertArg(mustType(t, "uint8[2]", nil), rawArg("[1,2]"))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{big.NewInt(1), big.NewInt(2)}, v)

	_, err = convertArg(mustType(t, "uint8[]", nil), rawArg(`[1,"x"]`))
	assert.ErrorContains(t, err, "element 1")
}

func TestConvertTupleArg(t *testing.T) {
	typ := mustType(t, "tuple", []abi.ArgumentMarshaling{
		{Name: "to", Type: "address"},
		{Name: "amount", Type: "uint256"},
	})

	v, err := convertArg(typ, rawArg(`{"to":"`+alice+`","amount":"1000"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"to": alice, "amount": big.NewInt(1000)}, v)

	v, err = convertArg(typ, rawArg(`["`+alice+`",1000]`))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{alice, big.NewInt(1000)}, v)

	_, err = convertArg(typ, rawArg(`{"to":"`+alice+`","amount":false}`))
	assert.ErrorContains(t, err, "member amount")

	_, err = convertArg(typ, rawArg(`7`))
	assert.ErrorContains(t, err, "expected object or array")
}

func TestSelectorArgs(t *testing.T) {
	name, args, err := selectorArgs("function transfer(address to, uint amount)")
	require.NoError(t, err)
	assert.Equal(t, "transfer", name)
	assert.Equal(t, "transfer(address,uint256)", abi.Signature(name, args))
	for _, arg := range args {
		assert.Empty(t, arg.Name)
	}

	args, err = typeListArgs("uint256,(bool,string)[]")
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, "(bool,string)[]", args[1].Type.String())

	_, _, err = selectorArgs("transfer")
	assert.Error(t, err)
}
