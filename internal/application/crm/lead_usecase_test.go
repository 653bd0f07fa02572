package crm_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadCreate_StatusDefaultNew(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)

	out, err := f.leadUC.Create(context.Background(), ownerA, dto.CreateLeadRequest{
		CustomerID: c.ID,
		Title:      "Oportunidad",
		Value:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.LeadStatusNew), out.Status, "sin status explícito el default es New")
	assert.Equal(t, c.ID, out.CustomerID)
	assert.True(t, out.Value.Equal(decimal.NewFromInt(100)))
}

// Crear un lead contra un cliente ajeno o inexistente responde ErrForbidden en
// ambos casos: la existencia del cliente no se filtra.
func TestLeadCreate_ClienteAjeno_Retorna_ErrForbidden(t *testing.T) {
	f := newCRMFixture()
	ajeno := f.seedCustomer(t, "c-1", ownerB, "De Otro", "otro@demo.test", 1)

	_, err := f.leadUC.Create(context.Background(), ownerA, dto.CreateLeadRequest{
		CustomerID: ajeno.ID,
		Title:      "Intruso",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.leadUC.Create(context.Background(), ownerA, dto.CreateLeadRequest{
		CustomerID: "no-existe",
		Title:      "Fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cliente inexistente responde igual que ajeno")
}

func TestLeadCreate_StatusDesconocido_Retorna_ErrInvalidInput(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)

	_, err := f.leadUC.Create(context.Background(), ownerA, dto.CreateLeadRequest{
		CustomerID: c.ID,
		Title:      "Oportunidad",
		Status:     "Pendiente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — acotamiento, filtros y orden
// ──────────────────────────────────────────────────────────────────────────────

// Sin customer_id el listado cubre todos los clientes del llamador (join) y
// jamás incluye leads de clientes de otros dueños.
func TestLeadList_SinCustomerID_AcotadoAlDueno(t *testing.T) {
	f := newCRMFixture()
	mio := f.seedCustomer(t, "c-1", ownerA, "Mío", "mio@demo.test", 1)
	otroMio := f.seedCustomer(t, "c-2", ownerA, "También Mío", "mio2@demo.test", 2)
	ajeno := f.seedCustomer(t, "c-3", ownerB, "Ajeno", "ajeno@demo.test", 3)
	f.seedLead(t, "l-1", mio.ID, entity.LeadStatusNew, "100", 1)
	f.seedLead(t, "l-2", otroMio.ID, entity.LeadStatusContacted, "250", 2)
	f.seedLead(t, "l-3", ajeno.ID, entity.LeadStatusNew, "999", 3)

	out, err := f.leadUC.List(context.Background(), ownerA, "", "", dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, out.Leads, 2)
	assert.Equal(t, 2, out.Pagination.TotalLeads)
	for _, l := range out.Leads {
		assert.NotEqual(t, "l-3", l.ID, "leads de clientes ajenos no deben filtrarse al listado")
	}
}

func TestLeadList_OrdenMasRecientePrimero(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)
	f.seedLead(t, "l-viejo", c.ID, entity.LeadStatusNew, "10", 1)
	f.seedLead(t, "l-medio", c.ID, entity.LeadStatusNew, "20", 2)
	f.seedLead(t, "l-nuevo", c.ID, entity.LeadStatusNew, "30", 3)

	out, err := f.leadUC.List(context.Background(), ownerA, "", "", dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, out.Leads, 3)
	assert.Equal(t, "l-nuevo", out.Leads[0].ID)
	assert.Equal(t, "l-medio", out.Leads[1].ID)
	assert.Equal(t, "l-viejo", out.Leads[2].ID)
}

func TestLeadList_ConCustomerIDAjeno_Retorna_ErrForbidden(t *testing.T) {
	f := newCRMFixture()
	ajeno := f.seedCustomer(t, "c-1", ownerB, "Ajeno", "ajeno@demo.test", 1)
	f.seedLead(t, "l-1", ajeno.ID, entity.LeadStatusNew, "100", 1)

	_, err := f.leadUC.List(context.Background(), ownerA, ajeno.ID, "", dto.PageQuery{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// status filtra por igualdad exacta; el centinela "all" y el vacío no filtran.
func TestLeadList_FiltroDeStatus(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)
	f.seedLead(t, "l-1", c.ID, entity.LeadStatusNew, "100", 1)
	f.seedLead(t, "l-2", c.ID, entity.LeadStatusNew, "50", 2)
	f.seedLead(t, "l-3", c.ID, entity.LeadStatusContacted, "250", 3)

	soloNew, err := f.leadUC.List(context.Background(), ownerA, "", "New", dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, soloNew.Leads, 2)
	assert.Equal(t, 2, soloNew.Pagination.TotalLeads)

	todos, err := f.leadUC.List(context.Background(), ownerA, "", "all", dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, todos.Leads, 3, `"all" equivale a no filtrar`)

	_, err = f.leadUC.List(context.Background(), ownerA, "", "Pendiente", dto.PageQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "status desconocido se rechaza")
}

func TestLeadList_SobreDePaginacionConLimitDefault(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)
	for i := 0; i < 13; i++ {
		f.seedLead(t, fmt.Sprintf("l-%02d", i), c.ID, entity.LeadStatusNew, "10", i)
	}

	page1, err := f.leadUC.List(context.Background(), ownerA, "", "", dto.PageQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Leads, 10, "limit default de leads es 10")
	assert.Equal(t, 2, page1.Pagination.TotalPages, "ceil(13/10) = 2")
	assert.Equal(t, 13, page1.Pagination.TotalLeads)

	page2, err := f.leadUC.List(context.Background(), ownerA, "", "", dto.PageQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2.Leads, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete — propiedad transitiva vía el cliente padre
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadUpdate_SoloCamposPresentes(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)
	l := f.seedLead(t, "l-1", c.ID, entity.LeadStatusNew, "100", 1)

	status := string(entity.LeadStatusConverted)
	out, err := f.leadUC.Update(context.Background(), ownerA, l.ID, dto.UpdateLeadRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Converted", out.Status)
	assert.Equal(t, l.Title, out.Title, "campo ausente no cambia")
	assert.True(t, out.Value.Equal(l.Value))
	assert.Equal(t, c.ID, out.CustomerID, "el lead no cambia de cliente padre")
}

func TestLeadUpdate_LeadInexistente_Retorna_ErrNotFound(t *testing.T) {
	f := newCRMFixture()
	title := "Nada"
	_, err := f.leadUC.Update(context.Background(), ownerA, "no-existe", dto.UpdateLeadRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El lead existe pero su cliente padre es de otro dueño: 403, no 404. La
// verificación re-resuelve el padre contra el repo en el momento de la mutación.
func TestLeadUpdate_PadreAjeno_Retorna_ErrForbidden(t *testing.T) {
	f := newCRMFixture()
	ajeno := f.seedCustomer(t, "c-1", ownerB, "Ajeno", "ajeno@demo.test", 1)
	l := f.seedLead(t, "l-1", ajeno.ID, entity.LeadStatusNew, "100", 1)

	title := "Intruso"
	_, err := f.leadUC.Update(context.Background(), ownerA, l.ID, dto.UpdateLeadRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := f.leads.GetByID(context.Background(), l.ID)
	assert.Equal(t, l.Title, stored.Title, "el lead ajeno queda intacto")
}

func TestLeadDelete_VerificaPropiedadDelPadre(t *testing.T) {
	f := newCRMFixture()
	mio := f.seedCustomer(t, "c-1", ownerA, "Mío", "mio@demo.test", 1)
	ajeno := f.seedCustomer(t, "c-2", ownerB, "Ajeno", "ajeno@demo.test", 2)
	propio := f.seedLead(t, "l-1", mio.ID, entity.LeadStatusNew, "100", 1)
	deOtro := f.seedLead(t, "l-2", ajeno.ID, entity.LeadStatusNew, "100", 2)

	require.NoError(t, f.leadUC.Delete(context.Background(), ownerA, propio.ID))
	gone, _ := f.leads.GetByID(context.Background(), propio.ID)
	assert.Nil(t, gone)

	err := f.leadUC.Delete(context.Background(), ownerA, deOtro.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.leadUC.Delete(context.Background(), ownerA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats — distribuciones del pipeline
// ──────────────────────────────────────────────────────────────────────────────

// Leads {New:100}, {New:50}, {Contacted:250}, {Lost:20} producen
// conteos {New:2, Contacted:1, Lost:1} y sumas {New:150, Contacted:250,
// Lost:20}. Converted no tiene leads y por eso NO aparece.
func TestLeadStats_ConteoYSumaPorEstado(t *testing.T) {
	f := newCRMFixture()
	c := f.seedCustomer(t, "c-1", ownerA, "Padre", "padre@demo.test", 1)
	f.seedLead(t, "l-1", c.ID, entity.LeadStatusNew, "100", 1)
	f.seedLead(t, "l-2", c.ID, entity.LeadStatusNew, "50", 2)
	f.seedLead(t, "l-3", c.ID, entity.LeadStatusContacted, "250", 3)
	f.seedLead(t, "l-4", c.ID, entity.LeadStatusLost, "20", 4)

	out, err := f.leadUC.Stats(context.Background(), ownerA)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, row := range out.StatusDistribution {
		counts[row.Status] = row.Count
	}
	assert.Equal(t, map[string]int{"New": 2, "Contacted": 1, "Lost": 1}, counts)

	values := map[string]string{}
	for _, row := range out.ValueDistribution {
		values[row.Status] = row.TotalValue.String()
	}
	assert.Equal(t, "150", values["New"])
	assert.Equal(t, "250", values["Contacted"])
	assert.Equal(t, "20", values["Lost"])
	assert.NotContains(t, values, "Converted", "estado sin leads se omite, no va en cero")
}

// Las estadísticas solo agregan leads de clientes del llamador.
func TestLeadStats_AisladasPorDueno(t *testing.T) {
	f := newCRMFixture()
	mio := f.seedCustomer(t, "c-1", ownerA, "Mío", "mio@demo.test", 1)
	ajeno := f.seedCustomer(t, "c-2", ownerB, "Ajeno", "ajeno@demo.test", 2)
	f.seedLead(t, "l-1", mio.ID, entity.LeadStatusNew, "100", 1)
	f.seedLead(t, "l-2", ajeno.ID, entity.LeadStatusNew, "9999", 2)

	out, err := f.leadUC.Stats(context.Background(), ownerA)
	require.NoError(t, err)
	require.Len(t, out.StatusDistribution, 1)
	assert.Equal(t, 1, out.StatusDistribution[0].Count)
	assert.Equal(t, "100", out.ValueDistribution[0].TotalValue.String())
}

// Sin leads las dos distribuciones van como listas vacías, nunca null en JSON.
func TestLeadStats_SinDatos_ListasVaciasNoNulas(t *testing.T) {
	f := newCRMFixture()

	out, err := f.leadUC.Stats(context.Background(), ownerA)
	require.NoError(t, err)
	assert.NotNil(t, out.StatusDistribution)
	assert.NotNil(t, out.ValueDistribution)
	assert.Empty(t, out.StatusDistribution)
	assert.Empty(t, out.ValueDistribution)
}
