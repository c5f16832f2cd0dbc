package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"kosteo-api/internal/model"
	"kosteo-api/internal/repository"
)

const maxContextRecords = 5

const assistantSystemPrompt = `Eres Asistente Kai, copiloto financiero de Kosteo. ` +
	`Usas datos de inventario, ventas y compras recientes para responder de forma breve, ` +
	`clara y con recomendaciones accionables. Siempre razona paso a paso y ofrece ideas ` +
	`prácticas cuando sea posible.`

const assistantFallbackAnswer = `No pude generar una respuesta con la información disponible. ` +
	`Intenta reformular tu pregunta o verifica la conexión con el proveedor de IA.`

// Completer is the outbound completion provider. *ai.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AssistantService answers natural-language questions grounded in the most
// recent business records. No conversation state is kept between calls.
type AssistantService interface {
	Ask(ctx context.Context, question string) (string, error)
}

type assistantService struct {
	productRepo repository.ProductRepository
	ventaRepo   repository.VentaRepository
	compraRepo  repository.CompraRepository
	completer   Completer // nil when no provider credential is configured
}

func NewAssistantService(productRepo repository.ProductRepository, ventaRepo repository.VentaRepository, compraRepo repository.CompraRepository, completer Completer) AssistantService {
	return &assistantService{
		productRepo: productRepo,
		ventaRepo:   ventaRepo,
		compraRepo:  compraRepo,
		completer:   completer,
	}
}

func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("%w: question is required", ErrValidation)
	}

	// Credential check happens before any data fetch or outbound call.
	if s.completer == nil {
		return "", ErrAssistantNotConfigured
	}

	products, err := s.productRepo.FindRecent(maxContextRecords)
	if err != nil {
		return "", err
	}
	ventas, err := s.ventaRepo.FindRecent(maxContextRecords)
	if err != nil {
		return "", err
	}
	compras, err := s.compraRepo.FindRecent(maxContextRecords)
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf(
		"Pregunta del usuario: %s\n\nContexto estructurado:\n%s",
		question,
		buildContextBlock(products, ventas, compras),
	)

	answer, err := s.completer.Complete(ctx, assistantSystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return assistantFallbackAnswer, nil
	}
	return answer, nil
}

// buildContextBlock renders one line per record, with explicit fallback text
// when a collection is empty.
func buildContextBlock(products []model.Product, ventas []model.Venta, compras []model.Compra) string {
	productLines := make([]string, 0, len(products))
	for _, p := range products {
		productLines = append(productLines,
			fmt.Sprintf("%s — stock: %d uds, PVP %s", p.Name, p.Stock, formatAmount(p.PVP)))
	}

	ventaLines := make([]string, 0, len(ventas))
	for _, v := range ventas {
		ventaLines = append(ventaLines,
			fmt.Sprintf("%s: %s (%s)", v.ProductName, formatAmount(v.TotalPrice), v.Status))
	}

	compraLines := make([]string, 0, len(compras))
	for _, c := range compras {
		compraLines = append(compraLines,
			fmt.Sprintf("%s: %s (%s)", c.ProductName, formatAmount(c.TotalCost), c.Status))
	}

	return fmt.Sprintf(
		"Inventario reciente:\n%s\n\nVentas recientes:\n%s\n\nCompras recientes:\n%s",
		joinOr(productLines, "Sin productos registrados."),
		joinOr(ventaLines, "Sin ventas registradas."),
		joinOr(compraLines, "Sin compras registradas."),
	)
}

func joinOr(lines []string, fallback string) string {
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
