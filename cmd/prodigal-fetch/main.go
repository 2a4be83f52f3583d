// cmd/prodigal-fetch/main.go
package main

import (
	"phagetools/internal/appshell"
	"phagetools/internal/fetchapp"
)

func main() { appshell.Main(fetchapp.RunContext) }
