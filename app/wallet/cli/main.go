package main

import "github.com/nitechain/nitechain/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
