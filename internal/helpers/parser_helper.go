package helpers

import "strconv"

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// CentavosToReais converts a price stored in integer minor units to the
// decimal major-unit value exposed by the API (5000 -> 50.00).
func CentavosToReais(centavos int) float64 {
	return float64(centavos) / 100
}
