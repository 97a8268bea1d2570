package postgres

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres/agentrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/user"
)

// MenuItemDTO represents the database structure for the fixed menu.
// The menu has no domain repository: it is seeded once here and read only
// through the query side.
type MenuItemDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255)"`
	Price float64
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// Migrate creates or updates the database schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&MenuItemDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

// Seed populates the fixed reference data on first startup: the menu, the
// delivery agent fleet and the built-in manager account. Each table is
// seeded only when it is empty, so restarts never duplicate rows or reset
// agent availability.
func Seed(ctx context.Context, db *gorm.DB, managerPassword string) error {
	if err := seedMenu(ctx, db); err != nil {
		return err
	}

	if err := seedAgents(ctx, db); err != nil {
		return err
	}

	return seedManager(ctx, db, managerPassword)
}

func seedMenu(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		name  string
		price float64
	}{
		{"Burger", 8.99},
		{"Pizza", 12.99},
		{"Salad", 6.99},
		{"Pasta", 9.99},
		{"Fries", 3.99},
		{"Soda", 1.99},
	}

	items := make([]MenuItemDTO, 0, len(defaults))
	for _, d := range defaults {
		// run the defaults through the domain constructor so seeding and
		// runtime invariants cannot drift apart
		item, err := menu.NewMenuItem(d.name, d.price)
		if err != nil {
			return err
		}
		items = append(items, MenuItemDTO{Name: item.Name(), Price: item.Price()})
	}

	return db.WithContext(ctx).Create(&items).Error
}

func seedAgents(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&agentrepo.AgentDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	names := []string{"John Doe", "Jane Smith", "Mike Johnson"}
	dtos := make([]agentrepo.AgentDTO, 0, len(names))
	for _, name := range names {
		a, err := agent.NewAgent(name)
		if err != nil {
			return err
		}
		dtos = append(dtos, agentrepo.AgentDTO{Name: a.Name(), Status: a.Status().String()})
	}

	return db.WithContext(ctx).Create(&dtos).Error
}

func seedManager(ctx context.Context, db *gorm.DB, managerPassword string) error {
	var count int64
	err := db.WithContext(ctx).Model(&userrepo.UserDTO{}).
		Where("role = ?", user.RoleManager.String()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(managerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	manager, err := user.NewUser("mngr", string(hash), user.RoleManager)
	if err != nil {
		return err
	}

	dto := userrepo.UserDTO{
		Username:     manager.Username(),
		PasswordHash: manager.PasswordHash(),
		Role:         manager.Role().String(),
	}

	return db.WithContext(ctx).Create(&dto).Error
}
