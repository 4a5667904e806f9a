package keyring

import (
	"errors"

	"rops/internal/ports"

	zalando "github.com/zalando/go-keyring"
)

// service is the keyring service name rops entries are stored under.
const service = "rops"

// ZalandoKeyring stores secrets in the OS keyring.
type ZalandoKeyring struct{}

func ProvideZalandoKeyring() *ZalandoKeyring {
	return &ZalandoKeyring{}
}

func (k *ZalandoKeyring) GetKey(keyName string) (string, error) {
	return zalando.Get(service, keyName)
}

func (k *ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	return zalando.Set(service, keyName, keyValue)
}

func (k *ZalandoKeyring) DeleteKey(keyName string) error {
	return zalando.Delete(service, keyName)
}

func (k *ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := zalando.Get(service, keyName)
	if errors.Is(err, zalando.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ ports.Keyring = (*ZalandoKeyring)(nil)
