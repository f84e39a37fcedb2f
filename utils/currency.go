package utils

import (
	"fmt"

	"github.com/astrenrest/storefront/models"
)

// FormatPrice renders an amount with its currency symbol for display,
// e.g. 19.8 JOD -> "JD 19.80", 28 USD -> "$28.00".
func FormatPrice(amount float64, cur models.Currency) string {
	if cur == models.CurrencyJOD {
		return fmt.Sprintf("JD %.2f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
