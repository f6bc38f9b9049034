package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key pair",
	Run:   generateRun,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func generateRun(cmd *cobra.Command, args []string) {
	w, err := wallet.New()
	if err != nil {
		log.Fatal(err)
	}

	path := getPrivateKeyPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.Fatal(err)
	}

	if err := w.SaveFile(path); err != nil {
		log.Fatal(err)
	}

	fmt.Println(w.Address())
}
