package main

import (
	"fmt"
	"os"

	"github.com/avoort95/finance-dashboard/cmd/category"
	"github.com/avoort95/finance-dashboard/cmd/ingest"
	"github.com/avoort95/finance-dashboard/cmd/review"
	"github.com/avoort95/finance-dashboard/cmd/root"
	"github.com/avoort95/finance-dashboard/cmd/summary"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(review.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
