// cmd/aragorn-query/main.go
package main

import (
	"phagetools/internal/appshell"
	"phagetools/internal/trnaapp"
)

func main() { appshell.Main(trnaapp.RunContext) }
