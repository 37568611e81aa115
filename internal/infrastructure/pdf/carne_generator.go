// Package pdf gera o carnê de pagamento de um título financeiro: uma ficha
// por parcela, com valor, vencimento e canhoto do recebedor.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gestaoplug/erp-api/internal/domain/entity"
	"github.com/gestaoplug/erp-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 22, Green: 78, Blue: 99}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

// CarneGenerator gera o carnê em PDF com Maroto v2.
type CarneGenerator struct {
	issuerName string
}

// NewCarneGenerator constrói o gerador com o nome do emitente.
func NewCarneGenerator(issuerName string) *CarneGenerator {
	return &CarneGenerator{issuerName: issuerName}
}

// Generate monta o PDF: cabeçalho do título e uma ficha por parcela, na ordem
// em que as parcelas vierem (vencimento).
func (g *CarneGenerator) Generate(doc *entity.FinanceDocument, customer *entity.Customer) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento é obrigatório")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Carnê de pagamento", true).
		WithAuthor(g.issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := len(doc.Entries)
	for i, e := range doc.Entries {
		m.AddRows(g.installmentRows(e, i+1, total)...)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar carnê: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow emitente à esquerda, título e cliente à direita.
func (g *CarneGenerator) headerRow(doc *entity.FinanceDocument, customer *entity.Customer) core.Row {
	customerName := ""
	if customer != nil {
		customerName = customer.Name
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.issuerName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(doc.Description, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("CARNÊ DE PAGAMENTO", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(customerName, props.Text{Size: 9, Align: align.Right, Top: 7}),
			text.New("Total: "+money.BRL(doc.TotalAmount), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 12}),
		),
	)
}

// installmentRows ficha de uma parcela com canhoto do recebedor.
func (g *CarneGenerator) installmentRows(e *entity.LedgerEntry, seq, total int) []core.Row {
	due := e.DueDate.Format("02/01/2006")
	amount := money.BRL(e.Amount)
	label := fmt.Sprintf("Parcela %d/%d", seq, total)

	ficha := row.New(22).Add(
		col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
			text.New(e.Description, props.Text{Size: 7, Top: 9, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("Vencimento", props.Text{Size: 7, Top: 2, Color: colorGray}),
			text.New(due, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		),
		col.New(3).Add(
			text.New("Valor", props.Text{Size: 7, Top: 2, Color: colorGray}),
			text.New(amount, props.Text{Style: fontstyle.Bold, Size: 11, Top: 7}),
		),
		col.New(3).Add(
			text.New("Recebedor / data", props.Text{Size: 7, Top: 2, Color: colorGray}),
			text.New("______________________", props.Text{Size: 9, Top: 12}),
		),
	)

	return []core.Row{
		ficha,
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3, Style: linestyle.Dashed}),
	}
}
