package types

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	"github.com/tendermint/tendermint/libs/bech32"
	"gopkg.in/yaml.v2"
)

var invalidStrs = []string{
	"hello, world!",
	"0xAA",
	"AAA",
	Bech32PrefixAccAddr + "AB0C",
	Bech32PrefixAccAddr + "1qqqq",
}

func testMarshal(t *testing.T, original interface{}, res interface{}, marshal func() ([]byte, error), unmarshal func([]byte) error) {
	bz, err := marshal()
	require.Nil(t, err)
	err = unmarshal(bz)
	require.Nil(t, err)
	require.Equal(t, original, res)
}

func TestEmptyAddresses(t *testing.T) {
	require.Equal(t, "", CUAddress{}.String())
	require.True(t, CUAddress(nil).Empty())
	require.True(t, CUAddress{}.Equals(CUAddress(nil)))

	addr, err := CUAddressFromBech32("")
	require.NoError(t, err)
	require.True(t, addr.Empty())

	addr, err = CUAddressFromBech32("   ")
	require.NoError(t, err)
	require.True(t, addr.Empty())

	_, err = CUAddressFromHex("")
	require.Error(t, err)
}

func TestRandBech32AccAddrConsistency(t *testing.T) {
	for i := 0; i < 100; i++ {
		bz := make([]byte, AddrLen)
		rand.Read(bz)

		acc := CUAddress(bz)
		res := CUAddress{}

		testMarshal(t, &acc, &res, acc.MarshalJSON, (&res).UnmarshalJSON)
		testMarshal(t, &acc, &res, acc.Marshal, (&res).Unmarshal)

		str := acc.String()
		require.True(t, strings.HasPrefix(str, Bech32PrefixAccAddr+"1"))
		res, err := CUAddressFromBech32(str)
		require.Nil(t, err)
		require.Equal(t, acc, res)

		res, err = CUAddressFromHex(hex.EncodeToString(bz))
		require.Nil(t, err)
		require.Equal(t, acc, res)
	}

	for _, str := range invalidStrs {
		_, err := CUAddressFromBech32(str)
		require.NotNil(t, err, str)

		err = (*CUAddress)(nil).UnmarshalJSON([]byte("\"" + str + "\""))
		require.NotNil(t, err, str)
	}
}

func TestAddressFromBech32WrongPrefix(t *testing.T) {
	bz := make([]byte, AddrLen)
	rand.Read(bz)

	str, err := bech32.ConvertAndEncode("cosmos", bz)
	require.NoError(t, err)
	_, err = CUAddressFromBech32(str)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid address prefix")
}

func TestAddressFromBech32WrongLength(t *testing.T) {
	bz := make([]byte, AddrLen+1)
	rand.Read(bz)

	str, err := bech32.ConvertAndEncode(Bech32PrefixAccAddr, bz)
	require.NoError(t, err)
	_, err = CUAddressFromBech32(str)
	require.Error(t, err)

	require.Error(t, VerifyAddressFormat(bz))
	require.NoError(t, VerifyAddressFormat(bz[:AddrLen]))
}

func TestYAMLMarshalers(t *testing.T) {
	addr := CUAddress(secp256k1.GenPrivKey().PubKey().Address())

	got, err := yaml.Marshal(addr)
	require.NoError(t, err)
	require.Equal(t, addr.String()+"\n", string(got))

	var back CUAddress
	require.NoError(t, yaml.Unmarshal(got, &back))
	require.Equal(t, addr, back)

	require.Error(t, yaml.Unmarshal([]byte("hello"), &back))
}

func TestAddressFromName(t *testing.T) {
	a := CUAddressFromName("alice")
	require.Len(t, a.Bytes(), AddrLen)
	require.Equal(t, a, CUAddressFromName("alice"))
	require.False(t, a.Equals(CUAddressFromName("bob")))
}

func TestAddressFromPubKey(t *testing.T) {
	pub := secp256k1.GenPrivKey().PubKey()
	addr := CUAddressFromPubKey(pub)
	require.Equal(t, []byte(pub.Address()), addr.Bytes())
	require.NoError(t, VerifyAddressFormat(addr))

	require.False(t, NewCUAddress().Equals(NewCUAddress()))
}

func TestAddressFormat(t *testing.T) {
	addr := CUAddressFromName("carol")
	require.Equal(t, addr.String(), fmt.Sprintf("%s", addr))
	require.Equal(t, fmt.Sprintf("%X", addr.Bytes()), fmt.Sprintf("%v", addr))
}

func TestCUAddressList(t *testing.T) {
	a, b, c := CUAddressFromName("a"), CUAddressFromName("b"), CUAddressFromName("c")
	list := CUAddressList{c, a, b}
	sort.Sort(list)
	require.True(t, sort.IsSorted(list))
	for i := 1; i < list.Len(); i++ {
		require.True(t, list.Less(i-1, i))
	}

	require.True(t, list.Contains(b))
	require.False(t, list.Contains(CUAddressFromName("d")))

	joined := list.Join()
	require.Equal(t, strings.Join([]string{list[0].String(), list[1].String(), list[2].String()}, ","), joined)
	require.Equal(t, "", CUAddressList{}.Join())
}
