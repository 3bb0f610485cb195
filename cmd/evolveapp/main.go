package main

import "github.com/evolvehq/evolve-backend/internal/app"

func main() {
	err := app.NewEvolveApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
