package paymentaccount

import "time"

// AccountType distinguishes bank accounts from mobile wallets.
type AccountType string

const (
	TypeBank   AccountType = "Bank"
	TypeWallet AccountType = "Wallet"
	TypeOther  AccountType = "Other"
)

// WalletProviders lists the mobile wallet providers in use across Pakistan
// that the office settles through.
var WalletProviders = []string{
	"JazzCash",
	"Easypaisa",
	"SadaPay",
	"NayaPay",
	"UPaisa",
	"Zindigi",
	"Alfa Wallet",
	"Konnect",
	"Mobicash",
}

func ValidWalletProvider(name string) bool {
	for _, p := range WalletProviders {
		if p == name {
			return true
		}
	}
	return false
}

// Account is a registered settlement destination for salaries and expenses.
type Account struct {
	ID    string
	Title string
	Type  AccountType
	// Provider is the bank or wallet name, e.g. "JazzCash".
	Provider      string
	AccountNumber string
	// HolderName is the registered account holder.
	HolderName string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
