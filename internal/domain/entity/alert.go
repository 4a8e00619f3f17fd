package entity

// Tipos de alerta según la fuente de datos que la produce.
const (
	AlertTypeStock       = "stock"
	AlertTypeCredit      = "credit"
	AlertTypePerformance = "performance"
	AlertTypeExpense     = "expense"
	AlertTypeMilestone   = "milestone"
)

// Severidades de alerta. SeverityRank define el orden de presentación.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
	SeveritySuccess  = "success"
)

// SeverityRank devuelve el rango ordinal de una severidad
// (critical < warning < info < success). Severidades desconocidas van al final.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	case SeveritySuccess:
		return 3
	default:
		return 4
	}
}

// Alert es un aviso generado por el motor de alertas. Nunca se persiste:
// se reconstruye completo en cada llamada y se filtra contra el conjunto de
// IDs descartados solo en la capa de presentación.
//
// ID es determinista respecto a la causa semántica: la misma condición
// produce siempre el mismo ID (ej. "out-of-stock", "milestone-tx-100"),
// lo que permite que un descarte persista mientras la condición no cambie.
type Alert struct {
	ID       string
	Type     string
	Icon     string
	Title    string
	Message  string
	Severity string
}
