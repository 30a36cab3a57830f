package wallet

import (
	"fmt"
	"math/rand"
)

// Pool hands out receiving addresses from the configured wallet list.
// Spreading orders over several wallets keeps the vendor field, not
// the address, as the payment discriminator.
type Pool struct {
	wallets []string
}

func NewPool(wallets []string) (*Pool, error) {
	if len(wallets) == 0 {
		return nil, fmt.Errorf("no wallets configured")
	}
	return &Pool{wallets: wallets}, nil
}

func (p *Pool) RandomWallet() (string, error) {
	return p.wallets[rand.Intn(len(p.wallets))], nil
}
