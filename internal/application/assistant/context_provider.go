package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/storeops-api/internal/application/ports"
	"github.com/jhoicas/storeops-api/internal/domain/repository"
)

// KeywordContextProvider arma el contexto por coincidencia de substring: un
// RAG del lado del cliente. En una versión real esto sería búsqueda vectorial;
// el puerto ContextProvider existe justamente para ese reemplazo.
type KeywordContextProvider struct {
	departments repository.DepartmentRepository
	products    repository.ProductRepository
}

var _ ports.ContextProvider = (*KeywordContextProvider)(nil)

// NewKeywordContextProvider construye el proveedor sobre la data de referencia.
func NewKeywordContextProvider(
	departments repository.DepartmentRepository,
	products repository.ProductRepository,
) *KeywordContextProvider {
	return &KeywordContextProvider{departments: departments, products: products}
}

// BuildContext selecciona los departamentos cuyo SOP contiene el primer token
// de la consulta (case-insensitive), unidos con los departamentos cuyo nombre
// contiene "beer" (sesgo fijo que no depende de la consulta). El catálogo de
// productos viaja completo e incondicionalmente.
func (p *KeywordContextProvider) BuildContext(query string) (string, error) {
	var token string
	if fields := strings.Fields(query); len(fields) > 0 {
		token = strings.ToLower(fields[0])
	}

	departments, err := p.departments.List()
	if err != nil {
		return "", fmt.Errorf("listar departamentos: %w", err)
	}

	var blocks []string
	for _, d := range departments {
		match := token != "" && strings.Contains(strings.ToLower(d.SOP), token)
		fallback := strings.Contains(strings.ToLower(d.Name), "beer")
		if !match && !fallback {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("DEPARTMENT: %s\nSOP: %s", d.Name, d.SOP))
	}

	products, err := p.products.List()
	if err != nil {
		return "", fmt.Errorf("listar catálogo: %w", err)
	}
	catalog, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("serializar catálogo: %w", err)
	}

	return fmt.Sprintf(
		"CONTEXT DATA:\n%s\n\nPRODUCT DATA:\n%s",
		strings.Join(blocks, "\n\n"),
		string(catalog),
	), nil
}
