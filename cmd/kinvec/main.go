// cmd/kinvec/main.go
package main

import (
	"kinvec/internal/appshell"
	"kinvec/internal/app"
)

func main() { appshell.Main(app.RunContext) }
