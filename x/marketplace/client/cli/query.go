package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/curio-network/curio/x/marketplace/query"
	"github.com/curio-network/curio/x/marketplace/types"
)

// GetQueryCmd returns the query commands for the marketplace module
func GetQueryCmd(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Marketplace query commands",
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		cmdGetOrders(key),
		cmdGetOrder(key),
		cmdGetPrice(key),
		cmdGetAsset(key),
		cmdGetSeller(key),
	)

	return cmd
}

func cmdGetOrders(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			obj, err := query.NewClient(clientCtx, key).Orders()
			if err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(obj)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func cmdGetOrder(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [order-id]",
		Short: "Get order by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id := types.OrderID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			obj, err := query.NewClient(clientCtx, key).Order(id)
			if err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(obj)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func cmdGetPrice(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [order-id]",
		Short: "Get the current acquirable price of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id := types.OrderID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			obj, err := query.NewClient(clientCtx, key).Price(id)
			if err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(obj)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func cmdGetAsset(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset [asset-id]",
		Short: "Get the listing history of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			obj, err := query.NewClient(clientCtx, key).Asset(args[0])
			if err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(obj)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func cmdGetSeller(key string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seller [address]",
		Short: "Get the listing history of a seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			seller, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return err
			}

			obj, err := query.NewClient(clientCtx, key).Seller(seller)
			if err != nil {
				return err
			}
			return clientCtx.PrintObjectLegacy(obj)
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
