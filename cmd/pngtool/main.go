/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/aexlab51/PNG-library/cmd/pngtool/cmd"
)

func main() {
	cmd.Execute()
}
