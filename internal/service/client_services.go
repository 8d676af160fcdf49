package service

import (
	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	VaultService    ClientVaultService
	RotationService ClientRotationService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	cipher := crypto.NewVaultCipher()
	authSvc := NewClientAuthService(localStore, serverAdapter, cipher)
	vaultSvc := NewClientVaultService(authSvc, serverAdapter, cipher, localStore.Blobs)

	return &ClientServices{
		AuthService:     authSvc,
		VaultService:    vaultSvc,
		RotationService: NewClientRotationService(vaultSvc, serverAdapter, cipher),
	}
}
