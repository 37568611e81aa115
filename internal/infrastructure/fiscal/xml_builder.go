// Package fiscal adaptadores do stub fiscal: montagem do XML de envio e o
// provedor simulado. Sem assinatura digital.
package fiscal

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	appfiscal "github.com/gestaoplug/erp-api/internal/application/fiscal"
	"github.com/gestaoplug/erp-api/internal/domain/entity"
)

var _ appfiscal.EnvelopeBuilder = (*XMLBuilder)(nil)

const nfeNamespace = "http://www.portalfiscal.inf.br/nfe"

// XMLBuilder monta o envelope XML da NF-e (layout simplificado) com etree.
type XMLBuilder struct {
	emitterName  string
	emitterCNPJ  string
	environment  string // homologacao, producao
}

// NewXMLBuilder constrói o builder com os dados do emitente.
func NewXMLBuilder(emitterName, emitterCNPJ, environment string) *XMLBuilder {
	return &XMLBuilder{emitterName: emitterName, emitterCNPJ: emitterCNPJ, environment: environment}
}

// Build monta o XML a partir do documento e do pedido faturado.
func (b *XMLBuilder) Build(doc *entity.FiscalDocument, order *entity.SalesOrder, customer *entity.Customer) (string, error) {
	if order == nil || customer == nil {
		return "", fmt.Errorf("fiscal: pedido e cliente são obrigatórios")
	}

	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	nfe := xml.CreateElement("NFe")
	nfe.CreateAttr("xmlns", nfeNamespace)

	inf := nfe.CreateElement("infNFe")
	inf.CreateAttr("Id", "NFe"+doc.ID)
	inf.CreateAttr("versao", "4.00")

	ide := inf.CreateElement("ide")
	ide.CreateElement("mod").SetText(fiscalModel(doc.Type))
	ide.CreateElement("serie").SetText(fmt.Sprintf("%d", doc.Series))
	ide.CreateElement("dhEmi").SetText(time.Now().UTC().Format(time.RFC3339))
	if b.environment == "producao" {
		ide.CreateElement("tpAmb").SetText("1")
	} else {
		ide.CreateElement("tpAmb").SetText("2")
	}

	emit := inf.CreateElement("emit")
	emit.CreateElement("CNPJ").SetText(b.emitterCNPJ)
	emit.CreateElement("xNome").SetText(b.emitterName)

	dest := inf.CreateElement("dest")
	if customer.PersonType == entity.PersonTypeCompany {
		dest.CreateElement("CNPJ").SetText(customer.TaxID)
	} else {
		dest.CreateElement("CPF").SetText(customer.TaxID)
	}
	dest.CreateElement("xNome").SetText(customer.Name)

	for i, item := range order.Items {
		det := inf.CreateElement("det")
		det.CreateAttr("nItem", fmt.Sprintf("%d", i+1))
		prod := det.CreateElement("prod")
		if item.ProductID != nil {
			prod.CreateElement("cProd").SetText(*item.ProductID)
		} else {
			prod.CreateElement("cProd").SetText("AVULSO")
		}
		prod.CreateElement("xProd").SetText(itemDescription(item))
		prod.CreateElement("qCom").SetText(item.Quantity.String())
		prod.CreateElement("vUnCom").SetText(item.UnitPrice.StringFixed(2))
		prod.CreateElement("vProd").SetText(item.Subtotal().StringFixed(2))
	}

	total := inf.CreateElement("total")
	icmsTot := total.CreateElement("ICMSTot")
	icmsTot.CreateElement("vDesc").SetText(order.TotalDiscount.StringFixed(2))
	icmsTot.CreateElement("vNF").SetText(order.NetTotal().StringFixed(2))

	xml.Indent(2)
	out, err := xml.WriteToString()
	if err != nil {
		return "", fmt.Errorf("fiscal: serializar XML: %w", err)
	}
	return out, nil
}

func fiscalModel(fiscalType string) string {
	if fiscalType == entity.FiscalTypeNFCe {
		return "65"
	}
	return "55"
}

func itemDescription(item *entity.SalesOrderItem) string {
	desc := strings.TrimSpace(item.Description)
	if desc == "" {
		desc = "Item do pedido"
	}
	return desc
}
