package main

import "github.com/habitado/go-condo-billing/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
