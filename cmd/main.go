package main

import (
	"fmt"
	"os"

	"github.com/poolpath/quoterdeploy/cmd/quoterdeploy"
)

func main() {
	rootCmd := quoterdeploy.BuildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
