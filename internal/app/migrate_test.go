package app

import (
	"testing"

	"go-workforce/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraint(t *testing.T) {
	stmt := constraint("customers", "fk_customers_employee",
		"FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE SET NULL")

	assert.Contains(t, stmt, "ALTER TABLE customers ADD CONSTRAINT fk_customers_employee FOREIGN KEY")
	assert.Contains(t, stmt, "EXCEPTION WHEN duplicate_object THEN NULL")
}

func TestMigrationStatements_NamedForErrorMappers(t *testing.T) {
	all := ""
	for _, stmt := range migrationStatements {
		all += stmt
	}

	for _, name := range []string{
		"uq_roles_name_lower",
		"fk_employee_technologies_technology",
		"fk_project_employees_employee",
		"fk_customers_employee",
	} {
		assert.Contains(t, all, name)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.App.Env = "production"
	logger, err = NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
