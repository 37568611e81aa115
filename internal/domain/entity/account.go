package entity

import "time"

// Account conta financeira (caixa, banco, carteira digital).
// O extrato casa LedgerEntry.PaymentMethod com o nome da conta.
type Account struct {
	ID        string
	Name      string
	Type      string // caixa, banco, digital
	Active    bool
	CreatedAt time.Time
}

// PaymentMethod meio de pagamento cadastrado (Pix, Boleto, Cartão...).
type PaymentMethod struct {
	ID        string
	Name      string
	Type      string // instantaneo, boleto, cartao
	Active    bool
	CreatedAt time.Time
}
