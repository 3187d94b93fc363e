package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	employeeDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/employee"
	projectDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/project"
	userDatamodel "github.com/rdelacruz/payroll-management/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with login accounts and sample employees and projects for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"pay_records", "payroll_deductions", "payrolls", "attendance_logs", "deductions", "projects", "employees", "users"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		now := time.Now()
		accounts := []userDatamodel.User{
			{Username: "admin", PasswordHash: string(hash), Role: "admin", IsActive: true, CreatedAt: now, UpdatedAt: now},
			{Username: "superadmin", PasswordHash: string(hash), Role: "super_admin", IsActive: true, CreatedAt: now, UpdatedAt: now},
		}
		for _, account := range accounts {
			var count int64
			if err := gormDB.Model(&userDatamodel.User{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
				log.Fatalf("failed to check user %s: %v", account.Username, err)
			}
			if count > 0 {
				fmt.Printf("user %s already exists, skipping\n", account.Username)
				continue
			}
			if err := gormDB.Create(&account).Error; err != nil {
				log.Fatalf("failed to seed user %s: %v", account.Username, err)
			}
			fmt.Println("Seeded user:", account.Username)
		}

		employees := []employeeDatamodel.Employee{
			{LastName: "Dela Cruz", FirstName: "Juan", DailyRate: 800, CreatedAt: now, UpdatedAt: now},
			{LastName: "Santos", FirstName: "Maria", DailyRate: 1000, CreatedAt: now, UpdatedAt: now},
			{LastName: "Reyes", FirstName: "Pedro", DailyRate: 650, CreatedAt: now, UpdatedAt: now},
		}
		for _, emp := range employees {
			var count int64
			if err := gormDB.Model(&employeeDatamodel.Employee{}).
				Where("last_name = ? AND first_name = ?", emp.LastName, emp.FirstName).
				Count(&count).Error; err != nil {
				log.Fatalf("failed to check employee: %v", err)
			}
			if count > 0 {
				continue
			}
			if err := gormDB.Create(&emp).Error; err != nil {
				log.Fatalf("failed to seed employee: %v", err)
			}
			fmt.Printf("Seeded employee: %s, %s\n", emp.LastName, emp.FirstName)
		}

		budget := 250000.0
		end := now.AddDate(0, 3, 0)
		projects := []projectDatamodel.Project{
			{Name: "Riverside Warehouse", StartDate: now.AddDate(0, -1, 0), EndDate: &end, Budget: &budget, CreatedAt: now, UpdatedAt: now},
			{Name: "Main Office Renovation", StartDate: now, CreatedAt: now, UpdatedAt: now},
		}
		for _, proj := range projects {
			var count int64
			if err := gormDB.Model(&projectDatamodel.Project{}).
				Where("project_name = ?", proj.Name).
				Count(&count).Error; err != nil {
				log.Fatalf("failed to check project: %v", err)
			}
			if count > 0 {
				continue
			}
			if err := gormDB.Create(&proj).Error; err != nil {
				log.Fatalf("failed to seed project: %v", err)
			}
			fmt.Println("Seeded project:", proj.Name)
		}
	},
}
