// cmd/kcomplex/main.go
package main

import (
	_ "github.com/joho/godotenv/autoload"

	"kcomplex/internal/app"
	"kcomplex/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
