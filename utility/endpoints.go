package utility

import (
	Config "memoless-api/config"
	"net/http"
)

type MetaData struct {
	Type, Endpoint, Action string
}

// GetRequestMetaData ... collaborator endpoints; Action may hold fmt verbs for path parameters
func GetRequestMetaData(request string, config Config.Data) MetaData {
	switch request {
	case "getPools":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/pools",
		}
	case "getInboundAddresses":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/inbound_addresses",
		}
	case "getMemoByHash":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/memo/%s",
		}
	case "checkMemoReference":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/memo/check/%s/%s",
		}
	case "getLastBlock":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/lastblock",
		}
	case "getNetwork":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/thorchain/network",
		}
	case "getBalances":
		return MetaData{
			Type:     http.MethodGet,
			Endpoint: config.ThornodeURL,
			Action:   "/cosmos/bank/v1beta1/balances/%s",
		}
	case "registerMemoReference":
		return MetaData{
			Type:     http.MethodPost,
			Endpoint: config.SignerServiceURL,
			Action:   "/transactions/memo-reference",
		}
	default:
		return MetaData{}
	}
}
