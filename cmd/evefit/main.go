package main

import (
	"github.com/acheronlabs/evefit/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
