package main

import (
	"github.com/certchain/certledger/app/tooling/certctl/commands"
)

func main() {
	commands.Execute()
}
