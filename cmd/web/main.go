package main

import "workzo_backend/internal/app"

func main() {
	app.Run()
}
