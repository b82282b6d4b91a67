package core

// TransferRequest is a caller-supplied transfer in major units. The from
// address must match the address the ceremony-derived keypair produces.
type TransferRequest struct {
	FromAddress string
	ToAddress   string
	Amount      float64
}

// WalletInfo is returned from register and login ceremonies.
type WalletInfo struct {
	UserID        string `json:"id"`
	Address       string `json:"walletAddress"`
	BiometricType string `json:"biometricType"`
	Token         string `json:"token"`
}
