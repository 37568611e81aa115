package entity

// ExpenseCategory categoria de despesa em árvore de dois níveis
// (raiz + filha opcional). (name, parent) é único.
type ExpenseCategory struct {
	ID       string
	Name     string
	ParentID *string
}

// FullName "Pai / Filha" quando há pai resolvido, senão só o nome.
func (c *ExpenseCategory) FullName(parent *ExpenseCategory) string {
	if parent != nil {
		return parent.Name + " / " + c.Name
	}
	return c.Name
}
