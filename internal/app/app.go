package app

import (
	"famcash/internal/config"
	"famcash/internal/db"
	"famcash/internal/domain/budgets"
	"famcash/internal/domain/family"
	"famcash/internal/domain/goals"
	"famcash/internal/domain/items"
	"famcash/internal/domain/transactions"
	"famcash/internal/domain/user"
	"famcash/internal/kvstore"
	budgetsrepo "famcash/internal/repository/sqlite/budgets"
	familyrepo "famcash/internal/repository/sqlite/family"
	goalsrepo "famcash/internal/repository/sqlite/goals"
	itemsrepo "famcash/internal/repository/sqlite/items"
	sessionrepo "famcash/internal/repository/sqlite/session"
	txrepo "famcash/internal/repository/sqlite/transactions"
	userrepo "famcash/internal/repository/sqlite/user"
	"famcash/internal/session"
	"famcash/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	Config       config.Config
	Users        *user.Service
	Families     *family.Service
	Goals        *goals.Service
	Budgets      *budgets.Service
	Transactions *transactions.Service
	Items        *items.Service
	Session      *session.Manager

	log logger.Logger
	db  *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Debug("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Debug("app: opening database", "path", cfg.DB.Path)
	gormDB, err := db.NewSQLite(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Debug("app: ensuring schema")
	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}

	log.Debug("app: opening state store", "path", cfg.State.Path)
	store, err := kvstore.Open(cfg.State.Path)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:       cfg,
		Users:        user.NewService(userrepo.NewSQLite(gormDB)),
		Families:     family.NewService(familyrepo.NewSQLite(gormDB)),
		Goals:        goals.NewService(goalsrepo.NewSQLite(gormDB)),
		Budgets:      budgets.NewService(budgetsrepo.NewSQLite(gormDB)),
		Transactions: transactions.NewService(txrepo.NewSQLite(gormDB), store),
		Items:        items.NewService(itemsrepo.NewSQLite(gormDB)),
		Session:      session.NewManager(log, sessionrepo.NewSQLite(gormDB), store, cfg.BcryptCost),
		log:          log,
		db:           gormDB,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
