// Command gen regenerates the typed GORM query helpers for the persistence models.
package main

import (
	"taskgate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SessionModel{},
		model.ResetTokenModel{},
		model.PlanModel{},
		model.SubscriptionModel{},
		model.TaskModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
