package main

import "github.com/habitado/go-condo-billing/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
