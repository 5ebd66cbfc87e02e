package feed_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supir/suministros-api/internal/application/feed"
	"github.com/supir/suministros-api/internal/application/usecase"
	"github.com/supir/suministros-api/internal/domain"
	"github.com/supir/suministros-api/internal/domain/entity"
	"github.com/supir/suministros-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria con el mismo contrato que los adaptadores reales:
// GetBy* devuelve (nil, nil) para claves inexistentes.
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.SupplierRepository   = (*memSuppliers)(nil)
	_ repository.SupplyItemRepository = (*memItems)(nil)
)

type memSuppliers struct {
	byCode map[string]*entity.Supplier
	getErr map[string]error // fuerza un fallo de almacén al consultar ese código
}

func (r *memSuppliers) ListAll() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.byCode))
	for _, s := range r.byCode {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSuppliers) GetByCode(code string) (*entity.Supplier, error) {
	if err := r.getErr[code]; err != nil {
		return nil, err
	}
	s, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSuppliers) Create(s *entity.Supplier) error {
	if _, ok := r.byCode[s.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.byCode[s.Code] = &cp
	return nil
}

func (r *memSuppliers) Update(s *entity.Supplier) error {
	if _, ok := r.byCode[s.Code]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.byCode[s.Code] = &cp
	return nil
}

func (r *memSuppliers) Delete(code string) error {
	if _, ok := r.byCode[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byCode, code)
	return nil
}

type memItems struct{ byBarcode map[string]*entity.SupplyItem }

func (r *memItems) ListAll() ([]*entity.SupplyItem, error) {
	out := make([]*entity.SupplyItem, 0, len(r.byBarcode))
	for _, it := range r.byBarcode {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductTitle < out[j].ProductTitle })
	return out, nil
}

func (r *memItems) GetByBarcode(barcode string) (*entity.SupplyItem, error) {
	it, ok := r.byBarcode[barcode]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItems) Create(item *entity.SupplyItem) error {
	if _, ok := r.byBarcode[item.Barcode]; ok {
		return domain.ErrDuplicate
	}
	cp := *item
	r.byBarcode[item.Barcode] = &cp
	return nil
}

func (r *memItems) Update(item *entity.SupplyItem) error {
	if _, ok := r.byBarcode[item.Barcode]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.byBarcode[item.Barcode] = &cp
	return nil
}

func (r *memItems) Delete(barcode string) error {
	if _, ok := r.byBarcode[barcode]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byBarcode, barcode)
	return nil
}

func (r *memItems) CountBySupplier(code string) (int, error) {
	n := 0
	for _, it := range r.byBarcode {
		if it.SupplierCode() == code {
			n++
		}
	}
	return n, nil
}

func (r *memItems) LowStock() ([]*entity.SupplyItem, error)          { return nil, nil }
func (r *memItems) NearExpiration(int) ([]*entity.SupplyItem, error) { return nil, nil }

// buildImporter arma el motor completo sobre los repos en memoria.
func buildImporter(t *testing.T) (*feed.Importer, *memSuppliers, *memItems) {
	t.Helper()
	suppliers := &memSuppliers{byCode: make(map[string]*entity.Supplier)}
	items := &memItems{byBarcode: make(map[string]*entity.SupplyItem)}
	supplierUC := usecase.NewSupplierUseCase(suppliers, items)
	itemUC := usecase.NewSupplyItemUseCase(items, suppliers)
	return feed.NewImporter(supplierUC, itemUC, zerolog.Nop()), suppliers, items
}

func importXML(t *testing.T, im *feed.Importer, xml string) *feed.Result {
	t.Helper()
	return im.Import(strings.NewReader(xml))
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas y actualizaciones básicas
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_AltaDeProveedorYArticuloNuevos(t *testing.T) {
	im, suppliers, items := buildImporter(t)

	result := importXML(t, im, `
		<supir>
			<supplier supplierCode="S1" supplierName="Distribuciones Norte" recentSupplyDate="2026-08-15"/>
			<item barcode="B1" productTitle="Guantes de nitrilo" productDetails="Caja x100"
				category="Protección" availableUnits="40" thresholdStock="10"
				expirationDate="2027-01-31" supplierCode="S1"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, feed.SeverityOK, result.Severity())
	assert.Equal(t, 1, result.SuppliersAdded())
	assert.Equal(t, 1, result.ItemsAdded())
	assert.Empty(t, result.Messages())

	s, _ := suppliers.GetByCode("S1")
	require.NotNil(t, s)
	assert.Equal(t, "Distribuciones Norte", s.Name)
	assert.Equal(t, "2026-08-15", entity.FormatOptionalDate(s.RecentSupplyDate))

	it, _ := items.GetByBarcode("B1")
	require.NotNil(t, it)
	assert.Equal(t, "Guantes de nitrilo", it.ProductTitle)
	assert.Equal(t, 40, it.AvailableUnits)
	assert.Equal(t, 10, it.ThresholdStock)
	assert.Equal(t, "2027-01-31", entity.FormatOptionalDate(it.ExpirationDate))
	assert.Equal(t, "S1", it.SupplierCode())
}

// El merge del proveedor sobreescribe siempre el nombre, pero una fecha ausente
// en el feed NO borra la fecha ya registrada.
func TestImport_MergeProveedor_FechaAusenteConservaLaExistente(t *testing.T) {
	im, suppliers, _ := buildImporter(t)
	prev, err := entity.ParseOptionalDate("2026-01-01")
	require.NoError(t, err)
	require.NoError(t, suppliers.Create(&entity.Supplier{Code: "S1", Name: "Nombre viejo", RecentSupplyDate: prev}))

	result := importXML(t, im, `
		<supir>
			<supplier supplierCode="S1" supplierName="Nombre nuevo"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, 1, result.SuppliersUpdated())
	assert.Equal(t, 0, result.SuppliersAdded())

	s, _ := suppliers.GetByCode("S1")
	require.NotNil(t, s)
	assert.Equal(t, "Nombre nuevo", s.Name, "el nombre viene siempre del feed")
	assert.Equal(t, "2026-01-01", entity.FormatOptionalDate(s.RecentSupplyDate),
		"una fecha ausente en el feed no borra la existente")
}

func TestImport_MergeProveedor_FechaPresenteSobreescribe(t *testing.T) {
	im, suppliers, _ := buildImporter(t)
	prev, _ := entity.ParseOptionalDate("2026-01-01")
	require.NoError(t, suppliers.Create(&entity.Supplier{Code: "S1", Name: "Proveedor", RecentSupplyDate: prev}))

	result := importXML(t, im, `
		<supir>
			<supplier supplierCode="S1" supplierName="Proveedor" recentSupplyDate="2026-08-20"/>
		</supir>`)

	require.True(t, result.OverallSuccess())
	s, _ := suppliers.GetByCode("S1")
	assert.Equal(t, "2026-08-20", entity.FormatOptionalDate(s.RecentSupplyDate))
}

// El merge del artículo es total: cada campo se sobreescribe con lo que traiga
// el feed, incluido el vínculo al proveedor (que puede quedar en nil).
func TestImport_MergeArticulo_SobreescrituraTotal(t *testing.T) {
	im, suppliers, items := buildImporter(t)
	require.NoError(t, suppliers.Create(&entity.Supplier{Code: "S1", Name: "Proveedor Uno"}))
	exp, _ := entity.ParseOptionalDate("2027-06-30")
	require.NoError(t, items.Create(&entity.SupplyItem{
		Barcode: "B1", ProductTitle: "Título viejo", ProductDetails: "Detalles viejos",
		Category: "Vieja", AvailableUnits: 99, ThresholdStock: 9,
		ExpirationDate: exp, Supplier: &entity.Supplier{Code: "S1", Name: "Proveedor Uno"},
	}))

	result := importXML(t, im, `
		<supir>
			<item barcode="B1" productTitle="Título nuevo" category="Nueva" availableUnits="5"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, 1, result.ItemsUpdated())

	it, _ := items.GetByBarcode("B1")
	require.NotNil(t, it)
	assert.Equal(t, "Título nuevo", it.ProductTitle)
	assert.Equal(t, "", it.ProductDetails, "un atributo ausente sobreescribe con el valor cero")
	assert.Equal(t, "Nueva", it.Category)
	assert.Equal(t, 5, it.AvailableUnits)
	assert.Equal(t, 0, it.ThresholdStock)
	assert.Nil(t, it.ExpirationDate, "la fecha ausente sí borra la existente (a diferencia del proveedor)")
	assert.Nil(t, it.Supplier, "el vínculo ausente también se sobreescribe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Degradación por campo: valores malformados no tumban el registro
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_FechaProveedorMalformada_ImportaSinFechaConAviso(t *testing.T) {
	im, suppliers, _ := buildImporter(t)

	result := importXML(t, im, `
		<supir>
			<supplier supplierCode="S1" supplierName="Proveedor" recentSupplyDate="15/08/2026"/>
		</supir>`)

	assert.True(t, result.OverallSuccess(), "una fecha malformada no falla el registro")
	assert.Equal(t, 1, result.SuppliersAdded())
	assert.Equal(t, 0, result.SuppliersFailed())
	assert.Equal(t, feed.SeverityWarnings, result.Severity())
	require.Len(t, result.Messages(), 1, "exactamente un aviso por la fecha malformada")
	assert.Contains(t, result.Messages()[0], "recentSupplyDate")

	s, _ := suppliers.GetByCode("S1")
	require.NotNil(t, s)
	assert.Nil(t, s.RecentSupplyDate)
}

func TestImport_NumericosMalformados_CampoOmitidoConAviso(t *testing.T) {
	im, _, items := buildImporter(t)

	result := importXML(t, im, `
		<supir>
			<item barcode="B1" productTitle="Vendas" category="Curación"
				availableUnits="muchas" thresholdStock="7"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, 1, result.ItemsAdded())
	require.NotEmpty(t, result.Messages())
	assert.Contains(t, result.Messages()[0], "availableUnits")

	it, _ := items.GetByBarcode("B1")
	require.NotNil(t, it)
	assert.Equal(t, 0, it.AvailableUnits, "el campo malformado se omite (valor cero)")
	assert.Equal(t, 7, it.ThresholdStock, "los demás campos se procesan con normalidad")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de la referencia al proveedor
// ──────────────────────────────────────────────────────────────────────────────

// Un proveedor del mismo feed es resoluble por los artículos del lote porque
// los proveedores se procesan completos antes del primer artículo.
func TestImport_ArticuloResuelveProveedorDelMismoLote(t *testing.T) {
	im, _, items := buildImporter(t)

	// El artículo aparece ANTES del proveedor en el documento; aun así resuelve.
	result := importXML(t, im, `
		<supir>
			<item barcode="B1" productTitle="Jeringas" category="Instrumental" supplierCode="S1"/>
			<supplier supplierCode="S1" supplierName="Proveedor del lote"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, 1, result.SuppliersAdded())
	assert.Equal(t, 1, result.ItemsAdded())

	it, _ := items.GetByBarcode("B1")
	require.NotNil(t, it)
	assert.Equal(t, "S1", it.SupplierCode())
}

// Alta nueva con referencia irresoluble: rechazo directo del registro.
func TestImport_ArticuloNuevoConProveedorIrresoluble_Rechazado(t *testing.T) {
	im, _, items := buildImporter(t)

	result := importXML(t, im, `
		<supir>
			<item barcode="B2" productTitle="Suero" category="Medicamentos" supplierCode="S9"/>
		</supir>`)

	assert.False(t, result.OverallSuccess(), "el rechazo del alta cuenta como fallo")
	assert.Equal(t, feed.SeverityFailed, result.Severity())
	assert.Equal(t, 0, result.ItemsAdded())
	assert.Equal(t, 1, result.ItemsFailed())

	joined := strings.Join(result.Messages(), "\n")
	assert.Contains(t, joined, "S9")
	assert.Contains(t, joined, "no se puede añadir")

	it, _ := items.GetByBarcode("B2")
	assert.Nil(t, it, "el registro rechazado no llega al almacén")
}

// Artículo EXISTENTE con referencia irresoluble: se actualiza sin vínculo y
// queda solo un aviso (no cuenta como fallo).
func TestImport_ArticuloExistenteConProveedorIrresoluble_ActualizaSinVinculo(t *testing.T) {
	im, suppliers, items := buildImporter(t)
	require.NoError(t, suppliers.Create(&entity.Supplier{Code: "S1", Name: "Proveedor Uno"}))
	require.NoError(t, items.Create(&entity.SupplyItem{
		Barcode: "B1", ProductTitle: "Gasas", Category: "Curación",
		Supplier: &entity.Supplier{Code: "S1", Name: "Proveedor Uno"},
	}))

	result := importXML(t, im, `
		<supir>
			<item barcode="B1" productTitle="Gasas" category="Curación" supplierCode="S9"/>
		</supir>`)

	assert.True(t, result.OverallSuccess())
	assert.Equal(t, 1, result.ItemsUpdated())
	assert.Equal(t, 0, result.ItemsFailed())
	assert.Equal(t, feed.SeverityWarnings, result.Severity())

	it, _ := items.GetByBarcode("B1")
	require.NotNil(t, it)
	assert.Nil(t, it.Supplier, "el vínculo irresoluble deja el artículo sin proveedor")
}

// Un fallo del almacén al resolver la referencia no es lo mismo que una
// referencia ausente: el registro se descarta y cuenta como fallido.
func TestImport_FalloDeAlmacenResolviendoProveedor_RegistroFallido(t *testing.T) {
	im, suppliers, items := buildImporter(t)
	suppliers.getErr = map[string]error{"S1": errors.New("conexión perdida")}

	result := importXML(t, im, `
		<supir>
			<item barcode="B1" productTitle="Gasas" category="Curación" supplierCode="S1"/>
		</supir>`)

	assert.False(t, result.OverallSuccess())
	assert.Equal(t, 0, result.ItemsAdded())
	assert.Equal(t, 0, result.ItemsUpdated())
	assert.Equal(t, 1, result.ItemsFailed())
	assert.Equal(t, feed.SeverityFailed, result.Severity())

	it, _ := items.GetByBarcode("B1")
	assert.Nil(t, it, "el registro descartado no llega al almacén")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos catastróficos: feed ilegible o malformado
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_XMLMalformado_AbortaConFallo(t *testing.T) {
	im, _, _ := buildImporter(t)

	result := importXML(t, im, `<supir><supplier supplierCode="S1"`)

	assert.False(t, result.OverallSuccess(),
		"un feed imposible de parsear nunca es una corrida exitosa")
	assert.Equal(t, feed.SeverityFailed, result.Severity())
	assert.Equal(t, 0, result.SuppliersAdded())
	assert.Equal(t, 0, result.ItemsAdded())
	require.NotEmpty(t, result.Messages())
	assert.Contains(t, result.Messages()[0], "ERROR:")
}

func TestImport_DocumentoVacio_AbortaConFallo(t *testing.T) {
	im, _, _ := buildImporter(t)
	result := importXML(t, im, "")
	assert.False(t, result.OverallSuccess())
	assert.Equal(t, feed.SeverityFailed, result.Severity())
}

func TestImportFile_RutaInexistente_AbortaConFallo(t *testing.T) {
	im, _, _ := buildImporter(t)

	result := im.ImportFile("/ruta/que/no/existe/supir.xml")

	assert.False(t, result.OverallSuccess())
	assert.Equal(t, feed.SeverityFailed, result.Severity())
	require.NotEmpty(t, result.Messages())
	assert.Contains(t, result.Messages()[0], "no se encontró el feed XML")
}

// ──────────────────────────────────────────────────────────────────────────────
// Corrida mixta: los fallos individuales no detienen el resto del lote
// ──────────────────────────────────────────────────────────────────────────────

func TestImport_LoteMixto_ContadoresYSeveridad(t *testing.T) {
	im, suppliers, items := buildImporter(t)
	require.NoError(t, suppliers.Create(&entity.Supplier{Code: "S1", Name: "Existente"}))

	result := importXML(t, im, `
		<supir>
			<supplier supplierCode="S1" supplierName="Existente renombrado"/>
			<supplier supplierCode="S2" supplierName="Nuevo"/>
			<item barcode="B1" productTitle="OK con proveedor" category="A" supplierCode="S2"/>
			<item barcode="B2" productTitle="Rechazado" category="B" supplierCode="S99"/>
			<item barcode="B3" productTitle="OK sin proveedor" category="C"/>
		</supir>`)

	assert.False(t, result.OverallSuccess(), "un solo registro fallido marca la corrida")
	assert.Equal(t, feed.SeverityFailed, result.Severity())
	assert.Equal(t, 1, result.SuppliersAdded())
	assert.Equal(t, 1, result.SuppliersUpdated())
	assert.Equal(t, 0, result.SuppliersFailed())
	assert.Equal(t, 2, result.ItemsAdded())
	assert.Equal(t, 0, result.ItemsUpdated())
	assert.Equal(t, 1, result.ItemsFailed())

	// Los registros buenos sí llegaron al almacén.
	it1, _ := items.GetByBarcode("B1")
	require.NotNil(t, it1)
	assert.Equal(t, "S2", it1.SupplierCode())
	it3, _ := items.GetByBarcode("B3")
	assert.NotNil(t, it3)
	it2, _ := items.GetByBarcode("B2")
	assert.Nil(t, it2)
}
