package main

import (
	"os"

	"github.com/omniviewdev/dockerclient-sdk/cmd/delegategen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
