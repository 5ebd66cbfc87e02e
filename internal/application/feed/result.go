package feed

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Niveles de severidad de un resultado de importación, para que la capa de
// presentación elija el estilo de aviso.
const (
	SeverityOK       = "ok"       // éxito sin mensajes
	SeverityWarnings = "warnings" // éxito con avisos individuales
	SeverityFailed   = "failed"   // al menos un registro falló o el feed no se pudo leer
)

// Result acumula el resultado de UNA importación del feed: contadores por
// categoría y un log de mensajes en orden de aparición. Se crea al inicio de
// la corrida, se muta durante ella y se descarta tras renderizarse; nunca se
// persiste ni se reutiliza.
//
// overallSuccess arranca en true y se fuerza a false con el primer fallo
// (de registro o de parseo del feed); no hay camino de vuelta a true.
type Result struct {
	RunID string

	suppliersAdded   int
	suppliersUpdated int
	suppliersFailed  int
	itemsAdded       int
	itemsUpdated     int
	itemsFailed      int

	messages       []string
	overallSuccess bool
}

// NewResult crea el acumulador de una corrida, con un RunID para correlación en logs.
func NewResult() *Result {
	return &Result{
		RunID:          uuid.New().String(),
		overallSuccess: true,
	}
}

// OverallSuccess indica si la corrida terminó sin ningún fallo.
func (r *Result) OverallSuccess() bool { return r.overallSuccess }

// Contadores por categoría.
func (r *Result) SuppliersAdded() int   { return r.suppliersAdded }
func (r *Result) SuppliersUpdated() int { return r.suppliersUpdated }
func (r *Result) SuppliersFailed() int  { return r.suppliersFailed }
func (r *Result) ItemsAdded() int       { return r.itemsAdded }
func (r *Result) ItemsUpdated() int     { return r.itemsUpdated }
func (r *Result) ItemsFailed() int      { return r.itemsFailed }

// Messages devuelve una copia del log de mensajes en orden de inserción.
func (r *Result) Messages() []string {
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// IncSuppliersAdded / IncSuppliersUpdated incrementos de éxito.
func (r *Result) IncSuppliersAdded()   { r.suppliersAdded++ }
func (r *Result) IncSuppliersUpdated() { r.suppliersUpdated++ }

// IncSuppliersFailed marca un proveedor fallido y fuerza overallSuccess=false.
func (r *Result) IncSuppliersFailed() {
	r.suppliersFailed++
	r.overallSuccess = false
}

func (r *Result) IncItemsAdded()   { r.itemsAdded++ }
func (r *Result) IncItemsUpdated() { r.itemsUpdated++ }

// IncItemsFailed marca un artículo fallido y fuerza overallSuccess=false.
func (r *Result) IncItemsFailed() {
	r.itemsFailed++
	r.overallSuccess = false
}

// AddMessage añade un aviso informativo al log.
func (r *Result) AddMessage(msg string) {
	r.messages = append(r.messages, msg)
}

// AddError añade un mensaje con prefijo de error al log.
func (r *Result) AddError(msg string) {
	r.messages = append(r.messages, "ERROR: "+msg)
}

// Abort registra un fallo catastrófico (feed ilegible o malformado) y marca
// la corrida entera como fallida: cero registros procesados cuentan.
func (r *Result) Abort(msg string) {
	r.AddError(msg)
	r.overallSuccess = false
}

// Severity clasifica el resultado para presentación: failed, warnings u ok.
func (r *Result) Severity() string {
	switch {
	case !r.overallSuccess:
		return SeverityFailed
	case len(r.messages) > 0:
		return SeverityWarnings
	default:
		return SeverityOK
	}
}

// Summary genera el reporte textual de la importación: contadores por
// categoría más el log de mensajes.
func (r *Result) Summary() string {
	var sb strings.Builder
	if r.overallSuccess {
		sb.WriteString("Importación Supir completada (posiblemente con errores individuales)\n")
	} else {
		sb.WriteString("Importación Supir fallida\n")
	}
	sb.WriteString("-------------------------------------\n")
	sb.WriteString("Proveedores:\n")
	fmt.Fprintf(&sb, "  Añadidos: %d\n", r.suppliersAdded)
	fmt.Fprintf(&sb, "  Actualizados: %d\n", r.suppliersUpdated)
	fmt.Fprintf(&sb, "  Fallidos: %d\n", r.suppliersFailed)
	sb.WriteString("Artículos:\n")
	fmt.Fprintf(&sb, "  Añadidos: %d\n", r.itemsAdded)
	fmt.Fprintf(&sb, "  Actualizados: %d\n", r.itemsUpdated)
	fmt.Fprintf(&sb, "  Fallidos: %d\n", r.itemsFailed)
	sb.WriteString("-------------------------------------\n")
	if len(r.messages) > 0 {
		sb.WriteString("Mensajes/Errores:\n")
		for _, msg := range r.messages {
			fmt.Fprintf(&sb, "  - %s\n", msg)
		}
	}
	return sb.String()
}
