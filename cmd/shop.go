package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
	"github.com/platanus-hack-25/lumera-cli/internal/customization"
)

var shopCmd = &cobra.Command{
	Use:         "shop",
	Short:       "Spend coins on avatars and frames",
	Annotations: map[string]string{accessAnnotation: accessAuth},
}

var shopCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every item and whether you own it",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := rt.client.Catalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("list catalog: %w", err)
		}
		out := cmd.OutOrStdout()
		printItemHeader(out)
		for _, it := range items {
			printItem(out, it)
		}
		fmt.Fprintf(out, "\n%d artículos\n", len(items))
		return nil
	},
}

var shopInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List the items you own",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := rt.client.Inventory(cmd.Context())
		if err != nil {
			return fmt.Errorf("list inventory: %w", err)
		}
		out := cmd.OutOrStdout()
		printItemHeader(out)
		for _, it := range inv {
			printItem(out, it.Item)
		}
		fmt.Fprintf(out, "\n%d artículos\n", len(inv))
		return nil
	},
}

var shopAvatarCmd = &cobra.Command{
	Use:   "avatar",
	Short: "Show what you have equipped",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := customization.NewStore()
		if err := store.LoadAvatar(cmd.Context(), rt.client); err != nil {
			return err
		}
		a := store.CurrentAvatar()
		if a == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin avatar equipado.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", a.Name, a.Rarity, a.ImageURL)
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy an item with coins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := rt.client.Purchase(cmd.Context(), id); err != nil {
			return fmt.Errorf("purchase: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "¡Comprado!")
		if st, err := rt.session.LoadGamificationStats(cmd.Context()); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Te quedan %d monedas.\n", st.Coins)
		}
		return nil
	},
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <item-id>",
	Short: "Equip an owned item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		slot, _ := cmd.Flags().GetString("slot")
		if err := rt.client.Equip(cmd.Context(), api.EquipRequest{ItemID: id, Slot: slot}); err != nil {
			return fmt.Errorf("equip: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Equipado.")
		return nil
	},
}

func printItemHeader(out io.Writer) {
	fmt.Fprintf(out, "%5s  %-24s  %-6s  %-10s  %7s  %s\n", "ID", "Nombre", "Tipo", "Rareza", "Precio", "Estado")
}

func printItem(out io.Writer, it api.CustomizationItem) {
	status := it.Status
	if it.IsEquipped {
		status = "equipped"
	}
	fmt.Fprintf(out, "%5d  %-24s  %-6s  %-10s  %7d  %s\n",
		it.ID, truncate(it.Name, 24), it.Type, it.Rarity, it.BaseCoinsCost, status)
}

func init() {
	shopEquipCmd.Flags().String("slot", api.SlotAvatar, "Slot to equip into ("+api.SlotAvatar+" or "+api.SlotFrame+")")

	shopCmd.AddCommand(shopCatalogCmd)
	shopCmd.AddCommand(shopInventoryCmd)
	shopCmd.AddCommand(shopAvatarCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
}
