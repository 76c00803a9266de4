package locationrepo

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fulfilment/internal/domain"
)

// DefaultLocations é o catálogo da rede de fulfilment usado quando nenhum arquivo é informado.
var DefaultLocations = []domain.Location{
	{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
	{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
	{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
	{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
	{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
	{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
	{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
	{Identification: "VETSBY-001", MaxNumberOfWarehouses: 1, MaxCapacity: 90},
}

// catalogFile é o formato do arquivo YAML do catálogo.
type catalogFile struct {
	Locations []domain.Location `yaml:"locations"`
}

// Catalog é um LocationResolver estático e somente leitura.
type Catalog struct {
	byID map[string]domain.Location
}

// NewCatalog indexa as localizações pela identificação. Identificações repetidas
// ou vazias são rejeitadas.
func NewCatalog(locations []domain.Location) (*Catalog, error) {
	byID := make(map[string]domain.Location, len(locations))
	for _, loc := range locations {
		if strings.TrimSpace(loc.Identification) == "" {
			return nil, fmt.Errorf("localização sem identificação no catálogo")
		}
		if loc.MaxNumberOfWarehouses < 0 || loc.MaxCapacity < 0 {
			return nil, fmt.Errorf("localização %s com limites negativos", loc.Identification)
		}
		if _, dup := byID[loc.Identification]; dup {
			return nil, fmt.Errorf("localização %s duplicada no catálogo", loc.Identification)
		}
		byID[loc.Identification] = loc
	}
	return &Catalog{byID: byID}, nil
}

// DefaultCatalog devolve o catálogo padrão.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultLocations)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog lê o catálogo de um arquivo YAML. Caminho vazio devolve o catálogo padrão.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler catálogo de localizações %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodifica um catálogo no formato:
//
//	locations:
//	  - identification: ZWOLLE-001
//	    maxNumberOfWarehouses: 1
//	    maxCapacity: 40
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("falha ao decodificar catálogo de localizações: %w", err)
	}
	return NewCatalog(file.Locations)
}

// ResolveByIdentifier devolve uma cópia da localização, ou nil se não existir.
func (c *Catalog) ResolveByIdentifier(_ context.Context, identifier string) (*domain.Location, error) {
	loc, ok := c.byID[identifier]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

// Len devolve o número de localizações do catálogo.
func (c *Catalog) Len() int {
	return len(c.byID)
}
