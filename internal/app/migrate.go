package app

import (
	"fmt"

	"go-workforce/internal/customer"
	"go-workforce/internal/employee"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/project"
	"go-workforce/internal/role"
	"go-workforce/internal/technology"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Roles must exist before employees: the employee model owns the role foreign key.
var migrationModels = []any{
	&role.Role{},
	&employee.Employee{},
	&project.Project{},
	&technology.Technology{},
	&customer.Customer{},
	&employee.EmployeeTechnology{},
	&project.ProjectEmployee{},
	&kafka.OutboxRecord{},
}

// Foreign key names must match the constants in the repository error mappers.
var migrationStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_roles_name_lower ON roles (LOWER(name))`,
	constraint("employee_technologies", "fk_employee_technologies_employee",
		"FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE"),
	constraint("employee_technologies", "fk_employee_technologies_technology",
		"FOREIGN KEY (technology_id) REFERENCES technologies(id) ON DELETE CASCADE"),
	constraint("project_employees", "fk_project_employees_project",
		"FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE"),
	constraint("project_employees", "fk_project_employees_employee",
		"FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE"),
	constraint("customers", "fk_customers_employee",
		"FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE SET NULL"),
}

func constraint(table, name, definition string) string {
	return fmt.Sprintf(`DO $$ BEGIN
	ALTER TABLE %s ADD CONSTRAINT %s %s;
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;`, table, name, definition)
}

// Migrate creates or updates the schema. It is safe to run on every start.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate statement: %w", err)
		}
	}

	logger.Info("schema migrated", zap.Int("models", len(migrationModels)))
	return nil
}
