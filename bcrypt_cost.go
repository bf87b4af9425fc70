//go:build !race

package tokenauth

func passwordHashCost() int {
	return 14
}
