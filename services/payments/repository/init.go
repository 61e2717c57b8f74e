package repository

import (
	"github.com/fintara/loanpay/internal/pkg/crypto"
	"github.com/fintara/loanpay/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// LedgerRepo implements the payments.LedgerRepo interface over Postgres.
// Bank routing and account numbers pass through the cipher on the way in
// and out so they are opaque at rest.
type LedgerRepo struct {
	cfg    *models.Config
	db     *sqlx.DB
	cipher *crypto.Cipher
}

// NewLedgerRepo creates a new ledger repository
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB, cipher *crypto.Cipher) *LedgerRepo {
	return &LedgerRepo{
		cfg:    cfg,
		db:     db,
		cipher: cipher,
	}
}
