package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supir/suministros-api/internal/domain/entity"
)

func itemExpiring(barcode string, exp *time.Time) *entity.SupplyItem {
	return &entity.SupplyItem{Barcode: barcode, ProductTitle: barcode, Category: "X", ExpirationDate: exp}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// La ventana es [hoy, hoy+días] INCLUSIVE en ambos extremos: un artículo que
// venció ayer queda fuera y uno que vence exactamente el último día entra.
func TestNearExpirationWindow_BordesInclusivos(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	all := []*entity.SupplyItem{
		itemExpiring("ayer", datePtr(2026, 8, 31)),
		itemExpiring("hoy", datePtr(2026, 9, 1)),
		itemExpiring("dentro", datePtr(2026, 9, 15)),
		itemExpiring("ultimo-dia", datePtr(2026, 10, 1)), // hoy + 30 exacto
		itemExpiring("fuera", datePtr(2026, 10, 2)),
	}

	near := nearExpirationWindow(all, today, 30)

	barcodes := make([]string, 0, len(near))
	for _, it := range near {
		barcodes = append(barcodes, it.Barcode)
	}
	assert.Equal(t, []string{"hoy", "dentro", "ultimo-dia"}, barcodes)
}

func TestNearExpirationWindow_SinFechaQuedanExcluidos(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	all := []*entity.SupplyItem{
		itemExpiring("sin-fecha", nil),
		itemExpiring("con-fecha", datePtr(2026, 9, 10)),
	}

	near := nearExpirationWindow(all, today, 30)
	require.Len(t, near, 1)
	assert.Equal(t, "con-fecha", near[0].Barcode)
}

func TestNearExpirationWindow_OrdenAscendentePorFecha(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	all := []*entity.SupplyItem{
		itemExpiring("tercero", datePtr(2026, 9, 25)),
		itemExpiring("primero", datePtr(2026, 9, 2)),
		itemExpiring("segundo", datePtr(2026, 9, 10)),
	}

	near := nearExpirationWindow(all, today, 30)
	require.Len(t, near, 3)
	assert.Equal(t, "primero", near[0].Barcode)
	assert.Equal(t, "segundo", near[1].Barcode)
	assert.Equal(t, "tercero", near[2].Barcode)
}

func TestNearExpirationWindow_VentanaCero_SoloHoy(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	all := []*entity.SupplyItem{
		itemExpiring("hoy", datePtr(2026, 9, 1)),
		itemExpiring("manana", datePtr(2026, 9, 2)),
	}

	near := nearExpirationWindow(all, today, 0)
	require.Len(t, near, 1)
	assert.Equal(t, "hoy", near[0].Barcode)
}
