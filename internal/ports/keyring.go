package ports

type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	DeleteKey(keyName string) error
	HasKey(keyName string) (bool, error)
}
