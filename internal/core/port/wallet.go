package port

//go:generate mockgen -source=wallet.go -destination=mock/wallet.go -package=mock

// WalletProvider hands out receiving addresses for new orders.
type WalletProvider interface {
	RandomWallet() (string, error)
}
