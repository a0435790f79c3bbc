package main

import (
	"os"

	"github.com/GlebRadaev/gigpay/cmd/gigpayctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
