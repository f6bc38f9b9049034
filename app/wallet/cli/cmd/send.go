package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/spf13/cobra"
)

var (
	to     string
	amount float64
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign and submit a transaction",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Address receiving the tokens.")
	sendCmd.Flags().Float64VarP(&amount, "amount", "m", 0, "Amount of tokens to send.")
}

func sendRun(cmd *cobra.Command, args []string) {
	w, err := wallet.LoadFile(getPrivateKeyPath())
	if err != nil {
		log.Fatal(err)
	}

	payload := struct {
		From       string  `json:"from"`
		To         string  `json:"to"`
		Amount     float64 `json:"amount"`
		PrivateKey string  `json:"private_key"`
	}{
		From:       w.Address(),
		To:         to,
		Amount:     amount,
		PrivateKey: w.PrivateKeyExport(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/submit", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(body))
}
