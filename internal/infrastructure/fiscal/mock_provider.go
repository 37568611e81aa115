package fiscal

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	appfiscal "github.com/gestaoplug/erp-api/internal/application/fiscal"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

var _ appfiscal.Provider = (*MockProvider)(nil)

// MockProvider simula o provedor fiscal: autoriza cerca de 75% das emissões
// com chave de acesso sintética e numera sequencialmente; o restante volta
// rejeitado com motivo fixo. Útil em desenvolvimento e homologação.
type MockProvider struct {
	mu     sync.Mutex
	rng    *rand.Rand
	nextNo int
}

// NewMockProvider constrói o provedor simulado.
func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed)), nextNo: 1}
}

// Submit simula o processamento síncrono da emissão.
func (p *MockProvider) Submit(_ context.Context, doc *entity.FiscalDocument) (*appfiscal.ProviderResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rng.Float64() < 0.75 {
		number := p.nextNo
		p.nextNo++
		return &appfiscal.ProviderResult{
			Status:     entity.FiscalStatusAuthorized,
			Number:     &number,
			AccessKey:  p.accessKey(),
			ProviderID: fmt.Sprintf("mock-%06d", number),
		}, nil
	}

	return &appfiscal.ProviderResult{
		Status: entity.FiscalStatusRejected,
		Reason: "Rejeição simulada 999",
	}, nil
}

// accessKey gera uma chave de acesso sintética de 44 dígitos.
func (p *MockProvider) accessKey() string {
	digits := make([]byte, 44)
	for i := range digits {
		digits[i] = byte('0' + p.rng.Intn(10))
	}
	return string(digits)
}
