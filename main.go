package main

import "petSocial/cmd/app"

func main() {
	app.GetApp().LetsGo()
}
