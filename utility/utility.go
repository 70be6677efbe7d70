package utility

import (
	"net"
	"net/http"
	"strings"
)

// GetIPAdress ... best effort client IP, honouring proxy headers
func GetIPAdress(r *http.Request) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(r.Header.Get(header), ",")
		for _, address := range addresses {
			ip := strings.TrimSpace(address)
			if ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// NormalizeTxHash ... strips a leading 0x and upper-cases a transaction hash
func NormalizeTxHash(hash string) string {
	hash = strings.TrimSpace(hash)
	if strings.HasPrefix(hash, "0x") || strings.HasPrefix(hash, "0X") {
		hash = hash[2:]
	}
	return strings.ToUpper(hash)
}

// SplitAsset ... splits CHAIN.SYMBOL (or the synth/trade separators) into its chain and symbol
func SplitAsset(asset string) (chain string, symbol string, ok bool) {
	index := strings.IndexAny(asset, "./~-")
	if index <= 0 || index == len(asset)-1 {
		return "", "", false
	}
	return strings.ToUpper(asset[:index]), asset[index+1:], true
}
