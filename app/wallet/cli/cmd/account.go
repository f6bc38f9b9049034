package cmd

import (
	"fmt"
	"log"

	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Print the address for the specified wallet",
	Run:   accountRun,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func accountRun(cmd *cobra.Command, args []string) {
	w, err := wallet.LoadFile(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(w.Address())
}
