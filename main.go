package main

import "github.com/envelope-zero/expenses/internal/commands"

// This is set at build time with -ldflags.
var version = "0.0.0"

//	@title						Expenses
//	@description				Track expenses against your income and monthly budgets per category.
//	@securityDefinitions.basic	BasicAuth
func main() {
	commands.Execute(version)
}
