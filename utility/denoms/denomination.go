package denoms

import "strings"

const (
	NATIVE_DENOM    = "rune"
	NATIVE_DECIMALS = 8
	// THORChain normalises every inbound chain to 1e8 base units
	THOR_BASE_DECIMALS = 8
	DEFAULT_DUST_UNITS = "0"
)

var (
	// PaymentSchemes maps a chain to the URI scheme wallets understand for it
	PaymentSchemes = map[string]string{
		"BTC":  "bitcoin",
		"ETH":  "ethereum",
		"LTC":  "litecoin",
		"BCH":  "bitcoincash",
		"DOGE": "dogecoin",
	}
)

// PaymentScheme ... URI scheme for chain, defaulting to its lower-cased ticker
func PaymentScheme(chain string) string {
	chain = strings.ToUpper(chain)
	if scheme, ok := PaymentSchemes[chain]; ok {
		return scheme
	}
	return strings.ToLower(chain)
}
