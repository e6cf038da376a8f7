package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/hangar-api/internal/domain"
)

func TestPlannedVsRealized(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.Add(24 * time.Hour)

	registros := []domain.RegistroDetalhado{
		// março: planejado revisado e um realizado
		newRegistro("m-p-old", mes(2024, time.March), withValores(800, 700, 400), withUpdatedAt(t0)),
		newRegistro("m-p-new", mes(2024, time.March), withValores(1000, 900, 600), withUpdatedAt(t1)),
		newRegistro("m-r", mes(2024, time.March), withStatus(domain.RegistroRealizado), withValores(1200, 1100, 650), withUpdatedAt(t0)),
		// abril: somente planejado, realizado usa o plano
		newRegistro("a-p", mes(2024, time.April), withValores(500, 450, 200)),
		// maio: dois projetos, só um realizado
		newRegistro("y-p1", mes(2024, time.May), withValores(100, 100, 50)),
		newRegistro("y-p2", mes(2024, time.May), withProjeto("p2", "P2"), withValores(300, 300, 100)),
		newRegistro("y-r1", mes(2024, time.May), withStatus(domain.RegistroRealizado), withValores(120, 120, 60)),
	}

	got, err := PlannedVsRealized(2024, registros)
	require.NoError(t, err)
	require.Len(t, got, 12)

	mar := got[2]
	assert.Equal(t, "2024-03", mar.Mes)
	assert.InDelta(t, 900, mar.Planejado, 1e-9)
	assert.InDelta(t, 600, mar.CustoPlanejado, 1e-9)
	assert.InDelta(t, 1100, mar.Realizado, 1e-9)
	assert.InDelta(t, 650, mar.CustoRealizado, 1e-9)

	abr := got[3]
	assert.InDelta(t, 450, abr.Planejado, 1e-9)
	assert.InDelta(t, 450, abr.Realizado, 1e-9)
	assert.InDelta(t, 200, abr.CustoRealizado, 1e-9)

	mai := got[4]
	assert.InDelta(t, 400, mai.Planejado, 1e-9)
	assert.InDelta(t, 120, mai.Realizado, 1e-9)
	assert.InDelta(t, 60, mai.CustoRealizado, 1e-9)

	assert.Equal(t, domain.PlanejadoRealizado{Mes: "2024-01"}, got[0])
}
