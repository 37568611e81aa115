package fiscal

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestBuildEnvelope(t *testing.T) {
	builder := NewXMLBuilder("GestaoPlug Ltda", "12345678000199", "homologacao")

	order := &entity.SalesOrder{
		ID:            "o1",
		CustomerID:    "c1",
		Status:        entity.OrderStatusInvoiced,
		TotalDiscount: decimal.RequireFromString("5.00"),
		Items: []*entity.SalesOrderItem{
			{ProductID: strPtr("p1"), Description: "Cabo HDMI 2m", Quantity: decimal.RequireFromString("2"), UnitPrice: decimal.RequireFromString("30.00")},
			{Description: "Frete", Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
	customer := &entity.Customer{ID: "c1", PersonType: entity.PersonTypeIndividual, Name: "Maria Silva", TaxID: "11122233344"}
	doc := &entity.FiscalDocument{ID: "f1", Type: entity.FiscalTypeNFe, Series: 1}

	xml, err := builder.Build(doc, order, customer)
	require.NoError(t, err)

	assert.Contains(t, xml, `Id="NFef1"`)
	assert.Contains(t, xml, "<mod>55</mod>")
	assert.Contains(t, xml, "<tpAmb>2</tpAmb>")
	assert.Contains(t, xml, "<CNPJ>12345678000199</CNPJ>")
	assert.Contains(t, xml, "<CPF>11122233344</CPF>")
	assert.Contains(t, xml, "<xProd>Cabo HDMI 2m</xProd>")
	assert.Contains(t, xml, "<vNF>65.00</vNF>")
	assert.Contains(t, xml, "<vDesc>5.00</vDesc>")
}

func TestBuildEnvelopeNFCe(t *testing.T) {
	builder := NewXMLBuilder("GestaoPlug Ltda", "12345678000199", "producao")
	order := &entity.SalesOrder{ID: "o1", CustomerID: "c1", Status: entity.OrderStatusInvoiced}
	customer := &entity.Customer{ID: "c1", PersonType: entity.PersonTypeCompany, Name: "Empresa X", TaxID: "99888777000155"}
	doc := &entity.FiscalDocument{ID: "f2", Type: entity.FiscalTypeNFCe, Series: 2}

	xml, err := builder.Build(doc, order, customer)
	require.NoError(t, err)
	assert.Contains(t, xml, "<mod>65</mod>")
	assert.Contains(t, xml, "<tpAmb>1</tpAmb>")
	assert.Contains(t, xml, "<CNPJ>99888777000155</CNPJ>")
}

func TestMockProvider(t *testing.T) {
	p := NewMockProvider(42)
	doc := &entity.FiscalDocument{ID: "f1", Type: entity.FiscalTypeNFe}

	var authorized, rejected int
	for i := 0; i < 200; i++ {
		result, err := p.Submit(context.Background(), doc)
		require.NoError(t, err)
		switch result.Status {
		case entity.FiscalStatusAuthorized:
			authorized++
			require.NotNil(t, result.Number)
			assert.Len(t, result.AccessKey, 44)
		case entity.FiscalStatusRejected:
			rejected++
			assert.Equal(t, "Rejeição simulada 999", result.Reason)
		default:
			t.Fatalf("status inesperado %q", result.Status)
		}
	}

	// ~75% de autorização; margem larga para não depender da semente
	assert.Greater(t, authorized, 120)
	assert.Greater(t, rejected, 10)
}
