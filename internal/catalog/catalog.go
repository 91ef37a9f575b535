// Package catalog содержит статический каталог тарифных планов и локаций.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Catalog неизменяемый в рантайме набор планов и локаций.
type Catalog struct {
	plans     map[string]domain.Plan
	locations map[string]domain.Location
}

type fileFormat struct {
	Plans     []domain.Plan     `yaml:"plans"`
	Locations []domain.Location `yaml:"locations"`
}

// New собирает каталог из срезов планов и локаций. Дубликаты идентификаторов и неположительные цены
// считаются ошибкой.
func New(plans []domain.Plan, locations []domain.Location) (*Catalog, error) {
	c := &Catalog{
		plans:     make(map[string]domain.Plan, len(plans)),
		locations: make(map[string]domain.Location, len(locations)),
	}
	for _, p := range plans {
		if p.ID == "" || p.ProviderType == "" {
			return nil, fmt.Errorf("catalog: plan %q must have id and provider_type", p.ID)
		}
		if !p.Hourly.IsPositive() || !p.Monthly.IsPositive() {
			return nil, fmt.Errorf("catalog: plan %s must have positive prices", p.ID)
		}
		if _, ok := c.plans[p.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate plan %s", p.ID)
		}
		c.plans[p.ID] = p
	}
	for _, l := range locations {
		if l.ID == "" {
			return nil, fmt.Errorf("catalog: location without id")
		}
		if l.Multiplier.IsZero() {
			l.Multiplier = decimal.NewFromInt(1)
		}
		if _, ok := c.locations[l.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate location %s", l.ID)
		}
		c.locations[l.ID] = l
	}
	return c, nil
}

// Load читает каталог из YAML файла. При пустом path возвращается Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, readErr)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return New(f.Plans, f.Locations)
}

// Plan возвращает план по id или domain.ErrPlanNotFound.
func (c *Catalog) Plan(id string) (domain.Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return domain.Plan{}, fmt.Errorf("catalog: %s: %w", id, domain.ErrPlanNotFound)
	}
	return p, nil
}

// Plans возвращает все планы, отсортированные по часовой цене.
func (c *Catalog) Plans() []domain.Plan {
	res := make([]domain.Plan, 0, len(c.plans))
	for _, p := range c.plans {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Hourly.Equal(res[j].Hourly) {
			return res[i].ID < res[j].ID
		}
		return res[i].Hourly.LessThan(res[j].Hourly)
	})
	return res
}

// Location возвращает локацию и признак ее наличия в каталоге.
func (c *Catalog) Location(id string) (domain.Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

// Multiplier ценовой коэффициент локации. Для неизвестных локаций 1.
func (c *Catalog) Multiplier(location string) decimal.Decimal {
	if l, ok := c.locations[location]; ok {
		return l.Multiplier
	}
	return decimal.NewFromInt(1)
}

// Default каталог по умолчанию. Цены в EUR без НДС.
func Default() *Catalog {
	c, err := New(defaultPlans(), defaultLocations())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultPlans() []domain.Plan {
	return []domain.Plan{
		plan("standard-1", "standard", 1, 2048, 20, 1, "0.0150", "9.50", "cx22"),
		plan("standard-2", "standard", 2, 4096, 40, 2, "0.0300", "18.90", "cx32"),
		plan("standard-4", "standard", 4, 8192, 80, 3, "0.0560", "35.40", "cx42"),
		plan("standard-8", "standard", 8, 16384, 160, 4, "0.1050", "66.50", "cx52"),
		plan("shared-2", "shared", 2, 4096, 80, 2, "0.0250", "15.80", "cpx22"),
		plan("shared-4", "shared", 4, 8192, 160, 3, "0.0440", "27.90", "cpx32"),
		plan("dedicated-2", "dedicated", 2, 8192, 80, 20, "0.0700", "44.20", "ccx13"),
		plan("dedicated-4", "dedicated", 4, 16384, 160, 20, "0.1380", "87.10", "ccx23"),
	}
}

func defaultLocations() []domain.Location {
	one := decimal.NewFromInt(1)
	return []domain.Location{
		{ID: "fsn1", Name: "Falkenstein", Country: "DE", Multiplier: one},
		{ID: "nbg1", Name: "Nuremberg", Country: "DE", Multiplier: one},
		{ID: "hel1", Name: "Helsinki", Country: "FI", Multiplier: one},
		{ID: "ash", Name: "Ashburn, VA", Country: "US", Multiplier: one},
		{ID: "hil", Name: "Hillsboro, OR", Country: "US", Multiplier: one},
		{ID: "sin", Name: "Singapore", Country: "SG", Multiplier: one},
	}
}

func plan(id, category string, vcpu, memoryMB, diskGB, transferTB int, hourly, monthly, providerType string) domain.Plan {
	return domain.Plan{
		ID:           id,
		Category:     category,
		VCPU:         vcpu,
		MemoryMB:     memoryMB,
		DiskGB:       diskGB,
		TransferTB:   transferTB,
		Hourly:       decimal.RequireFromString(hourly),
		Monthly:      decimal.RequireFromString(monthly),
		ProviderType: providerType,
	}
}
