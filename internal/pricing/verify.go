package pricing

import "github.com/shopspring/decimal"

// Verify compares a client-submitted price against the server price. Paying
// the server price or more is always accepted; paying less is accepted only
// while the shortfall stays within the policy tolerance. The caller must charge
// the server price either way. A non-positive server price is never payable.
func (p Policy) Verify(submitted, server int64) error {
	if server <= 0 {
		return &PriceVerificationError{Submitted: submitted, Server: server}
	}
	if submitted >= server {
		return nil
	}
	if submitted < 0 {
		return &PriceVerificationError{Submitted: submitted, Server: server}
	}
	shortfall := decimal.NewFromInt(server - submitted).Mul(hundred).Div(decimal.NewFromInt(server))
	if shortfall.GreaterThan(p.tolerance()) {
		return &PriceVerificationError{Submitted: submitted, Server: server}
	}
	return nil
}
