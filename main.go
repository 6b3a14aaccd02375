package main

import "github.com/vibast-solutions/ms-go-vendor-billing/cmd"

func main() {
	cmd.Execute()
}
