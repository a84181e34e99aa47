package keeper

import (
	"bytes"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/curio-network/curio/x/marketplace/types"
)

var (
	orderPrefix       = []byte{0x01, 0x00}
	assetIndexPrefix  = []byte{0x02, 0x00}
	assetCountPrefix  = []byte{0x02, 0x01}
	sellerIndexPrefix = []byte{0x03, 0x00}
	sellerCountPrefix = []byte{0x03, 0x01}
	paramsKey         = []byte{0x04, 0x00}
)

func orderKey(id types.OrderID) []byte {
	buf := bytes.NewBuffer(orderPrefix)
	buf.Write(id.Bytes())
	return buf.Bytes()
}

// assetIndexPart length-prefixes the asset id so that one asset's index
// range can never shadow another's.
func assetIndexPart(assetID string) []byte {
	buf := bytes.NewBuffer(nil)
	if err := binary.Write(buf, binary.BigEndian, uint16(len(assetID))); err != nil {
		panic(err)
	}
	buf.WriteString(assetID)
	return buf.Bytes()
}

func assetIndexRangePrefix(assetID string) []byte {
	buf := bytes.NewBuffer(assetIndexPrefix)
	buf.Write(assetIndexPart(assetID))
	return buf.Bytes()
}

func assetIndexKey(assetID string, seq uint64) []byte {
	buf := bytes.NewBuffer(assetIndexRangePrefix(assetID))
	if err := binary.Write(buf, binary.BigEndian, seq); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func assetCountKey(assetID string) []byte {
	buf := bytes.NewBuffer(assetCountPrefix)
	buf.Write(assetIndexPart(assetID))
	return buf.Bytes()
}

func sellerIndexRangePrefix(seller sdk.AccAddress) []byte {
	buf := bytes.NewBuffer(sellerIndexPrefix)
	buf.Write(seller.Bytes())
	return buf.Bytes()
}

func sellerIndexKey(seller sdk.AccAddress, seq uint64) []byte {
	buf := bytes.NewBuffer(sellerIndexRangePrefix(seller))
	if err := binary.Write(buf, binary.BigEndian, seq); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func sellerCountKey(seller sdk.AccAddress) []byte {
	buf := bytes.NewBuffer(sellerCountPrefix)
	buf.Write(seller.Bytes())
	return buf.Bytes()
}
