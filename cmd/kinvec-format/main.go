// cmd/kinvec-format/main.go
package main

import (
	"kinvec/internal/appshell"
	"kinvec/internal/formatapp"
)

func main() { appshell.Main(formatapp.RunContext) }
