package service

import (
	"context"
	"errors"
	"testing"

	"kosteo-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	answer     string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	return f.answer, f.err
}

func TestAssistant_EmptyQuestionIsValidationError(t *testing.T) {
	completer := &fakeCompleter{answer: "hola"}
	svc := NewAssistantService(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}, completer)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Ask(context.Background(), q)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Zero(t, completer.calls)
}

func TestAssistant_MissingCredentialNeverCallsOut(t *testing.T) {
	svc := NewAssistantService(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}, nil)

	_, err := svc.Ask(context.Background(), "¿Cómo van las ventas?")
	assert.ErrorIs(t, err, ErrAssistantNotConfigured)
}

func TestAssistant_BuildsContextFromRecentRecords(t *testing.T) {
	products := &fakeProductRepo{products: []model.Product{
		{Name: "Harina", Stock: 12, PVP: 3.5},
	}}
	ventas := &fakeVentaRepo{ventas: []model.Venta{
		{ProductName: "Harina", TotalPrice: 35, Status: model.StatusCompletado},
	}}
	compras := &fakeCompraRepo{compras: []model.Compra{
		{ProductName: "Harina", TotalCost: 20, Status: model.StatusPendiente},
	}}
	completer := &fakeCompleter{answer: "Las ventas van bien."}

	svc := NewAssistantService(products, ventas, compras, completer)
	answer, err := svc.Ask(context.Background(), "¿Cómo van las ventas?")
	require.NoError(t, err)

	assert.Equal(t, "Las ventas van bien.", answer)
	assert.Equal(t, 1, completer.calls)
	assert.Contains(t, completer.lastSystem, "Asistente Kai")
	assert.Contains(t, completer.lastUser, "Pregunta del usuario: ¿Cómo van las ventas?")
	assert.Contains(t, completer.lastUser, "Harina — stock: 12 uds, PVP 3.5")
	assert.Contains(t, completer.lastUser, "Harina: 35 (Completado)")
	assert.Contains(t, completer.lastUser, "Harina: 20 (Pendiente)")
}

func TestAssistant_EmptyCollectionsUseFallbackText(t *testing.T) {
	completer := &fakeCompleter{answer: "Sin datos aún."}
	svc := NewAssistantService(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}, completer)

	_, err := svc.Ask(context.Background(), "¿Qué hay en inventario?")
	require.NoError(t, err)

	assert.Contains(t, completer.lastUser, "Sin productos registrados.")
	assert.Contains(t, completer.lastUser, "Sin ventas registradas.")
	assert.Contains(t, completer.lastUser, "Sin compras registradas.")
}

func TestAssistant_EmptyCompletionYieldsFallbackAnswer(t *testing.T) {
	completer := &fakeCompleter{answer: ""}
	svc := NewAssistantService(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}, completer)

	answer, err := svc.Ask(context.Background(), "¿Hola?")
	require.NoError(t, err)
	assert.Equal(t, assistantFallbackAnswer, answer)
}

func TestAssistant_ProviderErrorPropagates(t *testing.T) {
	boom := errors.New("provider down")
	completer := &fakeCompleter{err: boom}
	svc := NewAssistantService(&fakeProductRepo{}, &fakeVentaRepo{}, &fakeCompraRepo{}, completer)

	_, err := svc.Ask(context.Background(), "¿Hola?")
	assert.ErrorIs(t, err, boom)
}

func TestAssistant_ReadErrorFails(t *testing.T) {
	boom := errors.New("read failed")
	completer := &fakeCompleter{answer: "ok"}
	svc := NewAssistantService(&fakeProductRepo{recentErr: boom}, &fakeVentaRepo{}, &fakeCompraRepo{}, completer)

	_, err := svc.Ask(context.Background(), "¿Hola?")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, completer.calls)
}
