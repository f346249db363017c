package main

import (
	"shiptrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models. The repositories
// are written against plain gorm, the generated package is for ad-hoc tooling.
func main() {
	models := []any{
		model.TenantModel{},
		model.CustomerModel{},
		model.ShipmentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
