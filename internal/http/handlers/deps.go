package handlers

import (
	"stockpile/internal/config"
	"stockpile/internal/repos"
	"stockpile/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ProductHandler *ProductHandler
	SearchHandler  *SearchHandler
	ExportHandler  *ExportHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	invSvc := services.NewInventoryService(prodRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Inv: invSvc},
		SearchHandler:  &SearchHandler{Inv: invSvc},
		ExportHandler:  &ExportHandler{Inv: invSvc},
	}
}
