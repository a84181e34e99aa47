package sdkutil

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// RenderQueryResponse uses codec to render query response. Returns error incase of failure.
func RenderQueryResponse(cdc *codec.LegacyAmino, obj interface{}) ([]byte, error) {
	response, err := cdc.Amino.MarshalJSONIndent(obj, "", "  ")
	if err != nil {
		return nil, sdkerrors.New("sdkutil", 1, err.Error())
	}
	return response, nil
}
