package handlers

import (
	"github.com/jmoiron/sqlx"

	"platemarket/internal/repos"
	"platemarket/internal/services"
)

type Deps struct {
	Sessions             *services.Sessions
	SecureCookies        bool
	ListingHandler       *ListingHandler
	FavoritesHandler     *FavoritesHandler
	NotificationsHandler *NotificationsHandler
	SubmissionHandler    *SubmissionHandler
	RulesHandler         *RulesHandler
	APIHandler           *APIHandler
}

func NewDeps(db *sqlx.DB, catalog *services.CatalogService, sessions *services.Sessions) *Deps {
	subSvc := services.NewSubmissionService(repos.NewSubmissionRepo(db))

	return &Deps{
		Sessions:             sessions,
		ListingHandler:       &ListingHandler{Catalog: catalog},
		FavoritesHandler:     &FavoritesHandler{Catalog: catalog},
		NotificationsHandler: &NotificationsHandler{},
		SubmissionHandler:    &SubmissionHandler{Submit: subSvc},
		RulesHandler:         &RulesHandler{},
		APIHandler:           &APIHandler{Catalog: catalog},
	}
}
