package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsdevblog/groph-vps/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestDefault() {
	c := Default()

	p, err := c.Plan("standard-2")
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("0.03").Equal(p.Hourly))
	s.Equal("cx32", p.ProviderType)
	s.Equal(2, p.VCPU)

	_, err = c.Plan("nope")
	s.Require().ErrorIs(err, domain.ErrPlanNotFound)

	// все известные локации имеют единичный коэффициент.
	for _, id := range []string{"fsn1", "nbg1", "hel1", "ash", "hil", "sin"} {
		l, ok := c.Location(id)
		s.Require().True(ok, id)
		s.True(l.Multiplier.Equal(decimal.NewFromInt(1)), id)
	}
	s.True(c.Multiplier("mars").Equal(decimal.NewFromInt(1)))
}

func (s *CatalogTestSuite) TestPlansSortedByHourly() {
	plans := Default().Plans()
	s.Require().NotEmpty(plans)
	for i := 1; i < len(plans); i++ {
		s.False(plans[i].Hourly.LessThan(plans[i-1].Hourly))
	}
}

func (s *CatalogTestSuite) TestLoad() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `
plans:
  - id: tiny
    category: standard
    vcpu: 1
    memory_mb: 1024
    disk_gb: 10
    transfer_tb: 1
    hourly: "0.0070"
    monthly: "4.20"
    provider_type: cx11
locations:
  - id: fsn1
    name: Falkenstein
    country: DE
`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path)
	s.Require().NoError(err)

	p, err := c.Plan("tiny")
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("0.007").Equal(p.Hourly))
	s.True(decimal.RequireFromString("4.2").Equal(p.Monthly))

	// коэффициент не задан в файле - подставляется 1.
	s.True(c.Multiplier("fsn1").Equal(decimal.NewFromInt(1)))
}

func (s *CatalogTestSuite) TestNewValidation() {
	cases := []struct {
		name  string
		plans []domain.Plan
	}{
		{
			name:  "no provider type",
			plans: []domain.Plan{{ID: "a", Hourly: decimal.NewFromInt(1), Monthly: decimal.NewFromInt(1)}},
		}, {
			name: "zero price",
			plans: []domain.Plan{{ID: "a", ProviderType: "cx22", Monthly: decimal.NewFromInt(1)}},
		}, {
			name: "duplicate",
			plans: []domain.Plan{
				{ID: "a", ProviderType: "cx22", Hourly: decimal.NewFromInt(1), Monthly: decimal.NewFromInt(1)},
				{ID: "a", ProviderType: "cx22", Hourly: decimal.NewFromInt(1), Monthly: decimal.NewFromInt(1)},
			},
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := New(t.plans, nil)
			s.Error(err)
		})
	}
}
