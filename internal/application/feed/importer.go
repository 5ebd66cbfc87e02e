// Package feed implementa el motor de reconciliación del feed Supir: parsea
// el XML externo, decide alta o actualización por registro contra el estado
// actual del almacén y acumula el resultado en un Result.
//
// Orden garantizado: los proveedores se procesan COMPLETOS antes del primer
// artículo, de modo que un proveedor recién importado es resoluble por los
// artículos de la misma corrida.
package feed

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/domain/entity"
)

// Importer motor de reconciliación. Delegando las escrituras en los casos de
// uso, cada registro pasa por el mismo juego de reglas que el CRUD normal.
type Importer struct {
	suppliers *usecase.SupplierUseCase
	items     *usecase.SupplyItemUseCase
	log       zerolog.Logger
}

// NewImporter construye el motor.
func NewImporter(suppliers *usecase.SupplierUseCase, items *usecase.SupplyItemUseCase, log zerolog.Logger) *Importer {
	return &Importer{suppliers: suppliers, items: items, log: log}
}

// ImportFile importa el feed desde una ruta del servidor. Un archivo
// inexistente es un fallo catastrófico: aborta sin procesar registros.
func (im *Importer) ImportFile(path string) *Result {
	f, err := os.Open(path)
	if err != nil {
		result := NewResult()
		result.Abort(fmt.Sprintf("no se encontró el feed XML: %s", path))
		im.log.Error().Err(err).Str("run_id", result.RunID).Str("path", path).Msg("feed no disponible")
		return result
	}
	defer f.Close()
	return im.Import(f)
}

// Import importa el feed desde un reader. Nunca devuelve error al llamador:
// los problemas por registro quedan en el Result y un fallo de parseo aborta
// la corrida con el mensaje correspondiente y OverallSuccess=false.
func (im *Importer) Import(r io.Reader) *Result {
	result := NewResult()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		result.Abort("error crítico al parsear el feed XML: " + err.Error())
		im.log.Error().Err(err).Str("run_id", result.RunID).Msg("feed XML malformado")
		return result
	}
	if doc.Root() == nil {
		result.Abort("error crítico al parsear el feed XML: documento sin elemento raíz")
		return result
	}

	// Paso 1: proveedores. Paso 2: artículos (pueden referenciarlos).
	im.importSuppliers(doc, result)
	im.importItems(doc, result)

	im.log.Info().
		Str("run_id", result.RunID).
		Bool("success", result.OverallSuccess()).
		Int("suppliers_added", result.SuppliersAdded()).
		Int("suppliers_updated", result.SuppliersUpdated()).
		Int("suppliers_failed", result.SuppliersFailed()).
		Int("items_added", result.ItemsAdded()).
		Int("items_updated", result.ItemsUpdated()).
		Int("items_failed", result.ItemsFailed()).
		Msg("importación de feed finalizada")
	return result
}

// importSuppliers procesa cada nodo <supplier> del feed: merge contra el
// proveedor existente o alta directa. Una fecha malformada no falla el
// registro: se importa sin fecha y queda un aviso.
func (im *Importer) importSuppliers(doc *etree.Document, result *Result) {
	for _, el := range doc.FindElements("//supplier") {
		code := el.SelectAttrValue("supplierCode", "")
		parsed := &entity.Supplier{
			Code: code,
			Name: el.SelectAttrValue("supplierName", ""),
		}

		dateStr := el.SelectAttrValue("recentSupplyDate", "")
		date, err := entity.ParseOptionalDate(dateStr)
		if err != nil {
			result.AddError(fmt.Sprintf("Proveedor '%s': formato de recentSupplyDate inválido '%s'. Fecha no asignada.", code, dateStr))
		} else {
			parsed.RecentSupplyDate = date
		}

		existing, err := im.suppliers.Get(code)
		if err != nil {
			result.IncSuppliersFailed()
			result.AddError(fmt.Sprintf("Proveedor '%s': fallo consultando el almacén - %v", code, err))
			continue
		}

		if existing != nil {
			// Merge: el nombre siempre se sobreescribe; la fecha solo si el
			// feed trae una (una fecha ausente no borra la existente).
			existing.Name = parsed.Name
			if parsed.RecentSupplyDate != nil {
				existing.RecentSupplyDate = parsed.RecentSupplyDate
			}
			if err := im.suppliers.Save(existing); err != nil {
				result.IncSuppliersFailed()
				result.AddError(fmt.Sprintf("Proveedor '%s': actualización fallida - %v", code, err))
			} else {
				result.IncSuppliersUpdated()
			}
		} else {
			if err := im.suppliers.Add(parsed); err != nil {
				result.IncSuppliersFailed()
				result.AddError(fmt.Sprintf("Proveedor '%s': alta fallida - %v", code, err))
			} else {
				result.IncSuppliersAdded()
			}
		}
	}
}

// importItems procesa cada nodo <item>. Los campos numéricos malformados no
// son fatales para el registro: se omite el campo y se deja un aviso. La
// referencia al proveedor se resuelve contra el almacén ya actualizado por
// el paso 1.
func (im *Importer) importItems(doc *etree.Document, result *Result) {
	for _, el := range doc.FindElements("//item") {
		barcode := el.SelectAttrValue("barcode", "")
		parsed := &entity.SupplyItem{
			Barcode:        barcode,
			ProductTitle:   el.SelectAttrValue("productTitle", ""),
			ProductDetails: el.SelectAttrValue("productDetails", ""),
			Category:       el.SelectAttrValue("category", ""),
		}

		if s := el.SelectAttrValue("availableUnits", ""); s != "" {
			if n, err := strconv.Atoi(s); err != nil {
				result.AddError(fmt.Sprintf("Artículo '%s': availableUnits inválido '%s'. Valor omitido.", barcode, s))
			} else {
				parsed.AvailableUnits = n
			}
		}
		if s := el.SelectAttrValue("thresholdStock", ""); s != "" {
			if n, err := strconv.Atoi(s); err != nil {
				result.AddError(fmt.Sprintf("Artículo '%s': thresholdStock inválido '%s'. Valor omitido.", barcode, s))
			} else {
				parsed.ThresholdStock = n
			}
		}

		expStr := el.SelectAttrValue("expirationDate", "")
		exp, err := entity.ParseOptionalDate(expStr)
		if err != nil {
			result.AddError(fmt.Sprintf("Artículo '%s': formato de expirationDate inválido '%s'. Fecha no asignada.", barcode, expStr))
		} else {
			parsed.ExpirationDate = exp
		}

		// Resolución de la referencia: tras el paso 1 un proveedor del mismo
		// feed ya está en el almacén. Si el código no resuelve, el registro
		// sigue sin vínculo (y el alta de un artículo nuevo se rechaza abajo);
		// si el almacén falla al resolver, el registro se descarta.
		feedSupplierCode := strings.TrimSpace(el.SelectAttrValue("supplierCode", ""))
		if feedSupplierCode != "" {
			supplier, err := im.suppliers.Get(feedSupplierCode)
			if err != nil {
				result.IncItemsFailed()
				result.AddError(fmt.Sprintf("Artículo '%s': fallo resolviendo el proveedor '%s' - %v", barcode, feedSupplierCode, err))
				continue
			}
			if supplier != nil {
				parsed.Supplier = supplier
			} else {
				result.AddMessage(fmt.Sprintf("Aviso artículo '%s': el feed referencia el proveedor '%s', que no existe en el almacén ni pudo importarse en este lote. El registro se procesa sin ese vínculo.", barcode, feedSupplierCode))
			}
		}

		existing, err := im.items.Get(barcode)
		if err != nil {
			result.IncItemsFailed()
			result.AddError(fmt.Sprintf("Artículo '%s': fallo consultando el almacén - %v", barcode, err))
			continue
		}

		if existing != nil {
			// Merge total: a diferencia de la fecha del proveedor, aquí cada
			// campo se sobreescribe incondicionalmente, incluido el vínculo.
			existing.ProductTitle = parsed.ProductTitle
			existing.ProductDetails = parsed.ProductDetails
			existing.Category = parsed.Category
			existing.AvailableUnits = parsed.AvailableUnits
			existing.ThresholdStock = parsed.ThresholdStock
			existing.ExpirationDate = parsed.ExpirationDate
			existing.Supplier = parsed.Supplier

			if err := im.items.Save(existing); err != nil {
				result.IncItemsFailed()
				result.AddError(fmt.Sprintf("Artículo '%s': actualización fallida - %v", barcode, err))
			} else {
				result.IncItemsUpdated()
			}
		} else {
			// Alta nueva con referencia irresoluble: rechazo directo, sin
			// intentar la escritura.
			if feedSupplierCode != "" && parsed.Supplier == nil {
				result.IncItemsFailed()
				result.AddError(fmt.Sprintf("Artículo '%s': no se puede añadir. El código de proveedor '%s' no existe en el almacén.", barcode, feedSupplierCode))
				continue
			}
			if err := im.items.Add(parsed); err != nil {
				result.IncItemsFailed()
				result.AddError(fmt.Sprintf("Artículo '%s': alta fallida - %v", barcode, err))
			} else {
				result.IncItemsAdded()
			}
		}
	}
}
