package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supir/suministros-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseOptionalDate — el contrato de fechas opcionales del feed y del almacén:
// vacío o "N/A" (en cualquier combinación de mayúsculas) es "sin fecha" y no
// es un error; cualquier otro valor debe ser ISO yyyy-MM-dd.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseOptionalDate_VacioEsNilSinError(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		d, err := entity.ParseOptionalDate(s)
		require.NoError(t, err, "entrada %q no debe ser error", s)
		assert.Nil(t, d, "entrada %q debe interpretarse como sin fecha", s)
	}
}

func TestParseOptionalDate_CentinelaNAEsNilSinError(t *testing.T) {
	for _, s := range []string{"N/A", "n/a", "N/a", " n/A "} {
		d, err := entity.ParseOptionalDate(s)
		require.NoError(t, err, "el centinela %q no debe ser error", s)
		assert.Nil(t, d, "el centinela %q debe interpretarse como sin fecha", s)
	}
}

func TestParseOptionalDate_FechaISOValida(t *testing.T) {
	d, err := entity.ParseOptionalDate("2026-09-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *d)
}

func TestParseOptionalDate_FormatoInvalidoRetornaError(t *testing.T) {
	for _, s := range []string{"15/09/2026", "2026-13-01", "ayer", "2026-09-15T00:00:00Z"} {
		d, err := entity.ParseOptionalDate(s)
		assert.Error(t, err, "entrada %q debe ser error de parseo", s)
		assert.Nil(t, d)
	}
}

func TestFormatOptionalDate_NilEsCadenaVacia(t *testing.T) {
	assert.Equal(t, "", entity.FormatOptionalDate(nil))
}

func TestFormatOptionalDate_RoundTrip(t *testing.T) {
	d, err := entity.ParseOptionalDate("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-31", entity.FormatOptionalDate(d))
}
