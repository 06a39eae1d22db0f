package main

import (
	"log"

	"github.com/crossplay/xwordsat/cmd/xword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
