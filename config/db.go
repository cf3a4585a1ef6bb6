package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// adminPermissions is the full grant set the owner role is seeded with.
var adminPermissions = []string{
	"bookings.view",
	"bookings.create",
	"bookings.edit",
	"bookings.cancel",
	"bookings.checkIn",
	"bookings.checkOut",
	"rooms.view",
	"rooms.create",
	"rooms.edit",
	"rooms.delete",
	"billing.view",
	"billing.record",
	"billing.verify",
	"billing.export",
	"inventory.view",
	"inventory.create",
	"inventory.edit",
	"inventory.delete",
	"inventory.adjust",
	"promotions.view",
	"promotions.create",
	"promotions.edit",
	"promotions.delete",
	"reviews.view",
	"reviews.delete",
	"staff.view",
	"staff.create",
	"staff.invite",
	"staff.delete",
	"roles.view",
	"roles.edit",
	"reports.view",
	"reports.export",
	"activityLogs.view",
	"settings.view",
	"settings.edit",
}

func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@resort.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2, TotalRooms: 10, BasePrice: 1500},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3, TotalRooms: 6, BasePrice: 2200},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4, TotalRooms: 4, BasePrice: 3500},
			{TypeName: "Pool Villa", Description: "Private Pool Villa", MaxGuests: 5, TotalRooms: 2, BasePrice: 6800},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	// ---------------- Resort profile ----------------
	var settingCount int64
	DB.Model(&models.ResortSetting{}).Count(&settingCount)
	if settingCount == 0 {
		if err := DB.Create(&models.ResortSetting{Name: "The Resort"}).Error; err != nil {
			log.Printf("warning: failed to seed resort settings: %v", err)
		}
	}

	// ---------------- Roles ----------------
	desiredRoles := []models.Role{
		{Name: "owner", Description: "System owner with full access"},
		{Name: "Manager", Description: "Manager with elevated access"},
		{Name: "Receptionist", Description: "Front desk operations"},
		{Name: "Housekeeper", Description: "Housekeeping and inventory access"},
	}

	rolesByKey := map[string]models.Role{}
	for i := range desiredRoles {
		role := desiredRoles[i]
		key := strings.ToLower(role.Name)

		var existing models.Role
		err := DB.Where("LOWER(name) = ?", key).First(&existing).Error
		if err == nil && existing.ID != 0 {
			rolesByKey[key] = existing
			if existing.Name != role.Name || existing.Description != role.Description {
				if err := DB.Model(&existing).Updates(models.Role{
					Name:        role.Name,
					Description: role.Description,
				}).Error; err != nil {
					log.Printf("warning: failed to update role %s: %v", role.Name, err)
				}
			}
			continue
		}

		if err := DB.Create(&role).Error; err != nil {
			log.Printf("warning: failed to create role %s: %v", role.Name, err)
			continue
		}
		rolesByKey[key] = role
	}

	ownerRole, ok := rolesByKey["owner"]
	if ok && ownerRole.ID != 0 {
		var permCount int64
		DB.Model(&models.RolePermission{}).Where("role_id = ?", ownerRole.ID).Count(&permCount)
		if permCount == 0 {
			perms := make([]models.RolePermission, 0, len(adminPermissions))
			for _, p := range adminPermissions {
				perms = append(perms, models.RolePermission{RoleID: ownerRole.ID, Permission: p})
			}
			if len(perms) > 0 {
				if err := DB.Create(&perms).Error; err != nil {
					log.Printf("warning: failed to create owner permissions: %v", err)
				}
			}
		}

		var memberCount int64
		DB.Model(&models.RoleMember{}).Where("role_id = ?", ownerRole.ID).Count(&memberCount)
		if memberCount == 0 {
			var admins []models.Admin
			DB.Find(&admins)
			if len(admins) > 0 {
				members := make([]models.RoleMember, 0, len(admins))
				for _, admin := range admins {
					members = append(members, models.RoleMember{RoleID: ownerRole.ID, AdminID: admin.ID})
				}
				if err := DB.Create(&members).Error; err != nil {
					log.Printf("warning: failed to assign admins to owner role: %v", err)
				}
			}
		}
	}

	log.Println("Roles ensured")
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, dbName, nil
}

func resolveMySQLDSN() (string, string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, strings.TrimSpace(os.Getenv("DB_NAME")), nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, dbName, nil
}

func ConnectDatabase() error {
	dsn, _, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.ResortSetting{},
		&models.Role{},
		&models.RolePermission{},
		&models.RoleMember{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Promotion{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.InventoryItem{},
		&models.ActivityLog{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
