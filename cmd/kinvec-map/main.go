// cmd/kinvec-map/main.go
package main

import (
	"kinvec/internal/appshell"
	"kinvec/internal/mapapp"
)

func main() { appshell.Main(mapapp.RunContext) }
