package store

// Repositories holds one instance of every repository over a shared
// Client.
type Repositories struct {
	Chains    *ChainRepository
	IBCData   *IBCDataRepository
	Accounts  *AccountRepository
	ChainKeys *ChainKeyRepository
}

// NewRepositories constructs every repository over client.
func NewRepositories(client *Client) *Repositories {
	return &Repositories{
		Chains:    NewChainRepository(client),
		IBCData:   NewIBCDataRepository(client),
		Accounts:  NewAccountRepository(client),
		ChainKeys: NewChainKeyRepository(client),
	}
}
