package main

import "signup_backend/internal/app"

func main() {
	app.Run()
}
