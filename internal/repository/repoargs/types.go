package repoargs

type RepositoryName string

const (
	WalletRepoName            RepositoryName = "wallet"
	LedgerTransactionRepoName RepositoryName = "ledger_transaction"
	ServerRepoName            RepositoryName = "server"
	PricingOverrideRepoName   RepositoryName = "pricing_override"
)
