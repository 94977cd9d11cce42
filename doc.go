// Package knapstack is a small toolbox for exact knapsack optimisation:
// pick items with a value and a cost so that the total value is maximal
// while the total cost stays within a budget.
//
// What is inside?
//
//	knapsack/               generic solvers (branch-and-bound, dynamic programming)
//	internal/instancefile/  classic text and YAML instance readers
//	internal/config/        viper-backed settings for the CLI
//	internal/logging/       zap-backed logr loggers
//	cmd/knapstack/          the command-line front end
//	examples/               runnable scenarios (cargo loading, cloud budget)
//
// Quick example:
//
//	budget 50:  (60,10)  (100,20)  (120,30)
//	            ───────  ████████  ████████  → value 220, cost 50
//
//	go install github.com/katalvlaran/knapstack/cmd/knapstack@latest
package knapstack
