package main

import "greenroots_backend/internal/app"

func main() {
	app.Run()
}
