package model

// Component identifies an effective-dated entity kind for tracking-history
// lookups and state-slot naming. The values match the backend's component
// registry.
type Component string

const (
	ComponentElementClassification Component = "pay-element-classification"
	ComponentPayrollGroup          Component = "pay-group"
	ComponentSalaryBasis           Component = "pay-salary-basis"
	ComponentPayrollElement        Component = "pay-element"
	ComponentInputValue            Component = "pay-input-value"
	ComponentPayrollFormula        Component = "pay-formula"
	ComponentFormulaResult         Component = "pay-formula-result"
	ComponentPayrollBalance        Component = "pay-balance"
	ComponentBalanceFeed           Component = "pay-balance-feed"
	ComponentElementLink           Component = "pay-element-link"
	ComponentElementLinkValue      Component = "pay-element-link-value"
	ComponentPayrollEntry          Component = "pay-per-entry"
	ComponentPayrollEntryValue     Component = "pay-per-entry-value"
	ComponentPayrollProcess        Component = "pay-process"
)

// String returns the wire name of the component.
func (c Component) String() string {
	return string(c)
}

// IsValid reports whether the component is a known value.
func (c Component) IsValid() bool {
	switch c {
	case ComponentElementClassification, ComponentPayrollGroup,
		ComponentSalaryBasis, ComponentPayrollElement, ComponentInputValue,
		ComponentPayrollFormula, ComponentFormulaResult,
		ComponentPayrollBalance, ComponentBalanceFeed,
		ComponentElementLink, ComponentElementLinkValue,
		ComponentPayrollEntry, ComponentPayrollEntryValue,
		ComponentPayrollProcess:
		return true
	}
	return false
}
