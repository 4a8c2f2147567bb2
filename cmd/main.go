package main

import (
	cmd "github.com/tikey/worlds/cmd/worlds"
)

func main() {
	cmd.Execute()
}
