package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/spf13/cobra"
)

type balance struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your balance.",
	Run:   balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) {
	w, err := wallet.LoadFile(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	address := w.Address()
	fmt.Println("For Account:", address)

	resp, err := http.Get(fmt.Sprintf("%s/v1/balance/%s", url, address))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var bal balance
	if err := json.NewDecoder(resp.Body).Decode(&bal); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.3f tokens\n", bal.Balance)
}
