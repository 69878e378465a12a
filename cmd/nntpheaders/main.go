package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-nntp/cmd/nntpheaders/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
