// Package memo classifies THORChain memos and rewrites swap and add-liquidity
// memos to carry affiliate fees.
package memo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the action a memo asks the chain to perform
type Kind string

// Memo kinds
const (
	Swap     Kind = "swap"
	Add      Kind = "add"
	Withdraw Kind = "withdraw"
	Donate   Kind = "donate"
	Bond     Kind = "bond"
	Unbond   Kind = "unbond"
	Leave    Kind = "leave"
	Reserve  Kind = "reserve"
	Refund   Kind = "refund"
	Noop     Kind = "noop"
	Unknown  Kind = "unknown"
)

const (
	separator     = ":"
	listSeparator = "/"
	maxFeeBps     = 10000
)

var (
	// ErrUnsupportedMemoKind is returned when affiliates cannot be attached to the memo's kind
	ErrUnsupportedMemoKind = errors.New("memo kind does not accept affiliates")
	// ErrInvalidAffiliateInput is returned for an empty affiliate, an out of range fee or unpaired lists
	ErrInvalidAffiliateInput = errors.New("invalid affiliate input")
)

var aliases = map[string]Kind{
	"=":    Swap,
	"s":    Swap,
	"swap": Swap,
	"+":    Add,
	"a":    Add,
	"-":    Withdraw,
	"wd":   Withdraw,
	"d":    Donate,
}

// checked in order; longer actions such as "addliquidity" resolve by prefix
var prefixes = []struct {
	prefix string
	kind   Kind
}{
	{"add", Add},
	{"withdraw", Withdraw},
	{"donate", Donate},
	{"unbond", Unbond},
	{"bond", Bond},
	{"leave", Leave},
	{"reserve", Reserve},
	{"refund", Refund},
	{"noop", Noop},
}

type layout struct {
	affiliate int
	fee       int
	width     int
}

// positions of the affiliate and fee slots for the kinds that carry them
var layouts = map[Kind]layout{
	Swap: {affiliate: 4, fee: 5, width: 6},
	Add:  {affiliate: 3, fee: 4, width: 5},
}

// Parsed is a positional view of a memo
type Parsed struct {
	Action string
	Kind   Kind
	Fields []string
}

// Classify maps an action token to its kind
func Classify(action string) Kind {
	token := strings.ToLower(strings.TrimSpace(action))
	if token == "" {
		return Unknown
	}
	if kind, ok := aliases[token]; ok {
		return kind
	}
	for _, p := range prefixes {
		if strings.HasPrefix(token, p.prefix) {
			return p.kind
		}
	}
	return Unknown
}

// Parse splits memo into its colon separated fields and classifies it
func Parse(memo string) Parsed {
	memo = strings.TrimSpace(memo)
	if memo == "" {
		return Parsed{Kind: Unknown}
	}
	fields := strings.Split(memo, separator)
	return Parsed{
		Action: fields[0],
		Kind:   Classify(fields[0]),
		Fields: fields,
	}
}

func (p Parsed) field(i int) string {
	if i < 0 || i >= len(p.Fields) {
		return ""
	}
	return p.Fields[i]
}

// Asset is the pool or target asset
func (p Parsed) Asset() string { return p.field(1) }

// Destination is the target address of a swap or the paired address of an add
func (p Parsed) Destination() string { return p.field(2) }

// Limit is the swap trade limit, or the basis points of a withdraw
func (p Parsed) Limit() string {
	switch p.Kind {
	case Swap:
		return p.field(3)
	case Withdraw:
		return p.field(2)
	}
	return ""
}

// Affiliates lists the affiliate names or addresses, in order
func (p Parsed) Affiliates() []string {
	l, ok := layouts[p.Kind]
	if !ok {
		return nil
	}
	return splitList(p.field(l.affiliate))
}

// Fees lists the affiliate fees in basis points, paired with Affiliates
func (p Parsed) Fees() []string {
	l, ok := layouts[p.Kind]
	if !ok {
		return nil
	}
	return splitList(p.field(l.fee))
}

// Trailing holds the fields past the known layout of the memo's kind
func (p Parsed) Trailing() []string {
	l, ok := layouts[p.Kind]
	if !ok || len(p.Fields) <= l.width {
		return nil
	}
	return p.Fields[l.width:]
}

func (p Parsed) String() string {
	return strings.Join(p.Fields, separator)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, listSeparator)
}

// SupportsAffiliate reports whether memos of kind can carry an affiliate fee
func SupportsAffiliate(kind Kind) bool {
	_, ok := layouts[kind]
	return ok
}

// AddAffiliate appends address with a fee of feeBps basis points to memo.
// Existing affiliates are kept and the new one is paired at the next
// position. On failure the original memo is returned with the error.
func AddAffiliate(memo, address, feeBps string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return memo, fmt.Errorf("%w: affiliate address is empty", ErrInvalidAffiliateInput)
	}
	fee, err := strconv.Atoi(strings.TrimSpace(feeBps))
	if err != nil || fee < 0 || fee > maxFeeBps {
		return memo, fmt.Errorf("%w: fee %q must be an integer between 0 and %d basis points", ErrInvalidAffiliateInput, feeBps, maxFeeBps)
	}

	parsed := Parse(memo)
	slots, ok := layouts[parsed.Kind]
	if !ok {
		return memo, fmt.Errorf("%w: %s", ErrUnsupportedMemoKind, parsed.Kind)
	}

	fields := make([]string, len(parsed.Fields), len(parsed.Fields)+slots.width)
	copy(fields, parsed.Fields)
	for len(fields) < slots.width {
		fields = append(fields, "")
	}

	affiliates := splitList(fields[slots.affiliate])
	if len(affiliates) == 0 {
		fields[slots.affiliate] = address
		fields[slots.fee] = strconv.Itoa(fee)
		return strings.Join(fields, separator), nil
	}
	fees := splitList(fields[slots.fee])
	if len(affiliates) != len(fees) {
		return memo, fmt.Errorf("%w: memo has %d affiliates but %d fees", ErrInvalidAffiliateInput, len(affiliates), len(fees))
	}
	for _, existing := range affiliates {
		if strings.EqualFold(existing, address) {
			return memo, nil
		}
	}

	fields[slots.affiliate] = strings.Join(append(affiliates, address), listSeparator)
	fields[slots.fee] = strings.Join(append(fees, strconv.Itoa(fee)), listSeparator)
	return strings.Join(fields, separator), nil
}
