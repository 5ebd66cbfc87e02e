package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supir/suministros-api/internal/domain/entity"
)

// La columna expiration_date es texto: nil viaja como "N/A" y un valor
// almacenado malformado degrada en silencio a "sin vencimiento".

func TestEncodeExpiration_NilUsaCentinela(t *testing.T) {
	assert.Equal(t, "N/A", encodeExpiration(nil))
}

func TestEncodeExpiration_FechaEnISO(t *testing.T) {
	d := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2027-03-15", encodeExpiration(&d))
}

func TestDecodeExpiration_CentinelaYVacioSonNil(t *testing.T) {
	assert.Nil(t, decodeExpiration("B1", "N/A"))
	assert.Nil(t, decodeExpiration("B1", "n/a"))
	assert.Nil(t, decodeExpiration("B1", ""))
}

func TestDecodeExpiration_ValorMalformadoDegradaANil(t *testing.T) {
	assert.Nil(t, decodeExpiration("B1", "31/12/2027"))
	assert.Nil(t, decodeExpiration("B1", "basura"))
}

func TestDecodeExpiration_RoundTrip(t *testing.T) {
	d := time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC)
	got := decodeExpiration("B1", encodeExpiration(&d))
	require.NotNil(t, got)
	assert.True(t, d.Equal(*got))
}

func TestEncodeSupplierCode_SinProveedorEsNULL(t *testing.T) {
	assert.Nil(t, encodeSupplierCode(&entity.SupplyItem{Barcode: "B1"}))

	enBlanco := &entity.SupplyItem{Barcode: "B1", Supplier: &entity.Supplier{Code: "   "}}
	assert.Nil(t, encodeSupplierCode(enBlanco))
}

func TestEncodeSupplierCode_ConProveedor(t *testing.T) {
	item := &entity.SupplyItem{Barcode: "B1", Supplier: &entity.Supplier{Code: "S1"}}
	got := encodeSupplierCode(item)
	require.NotNil(t, got)
	assert.Equal(t, "S1", *got)
}
