package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the catalog test database. Expects a MySQL instance at
// localhost:3306 with a database named 'tourquote_test'; tests skip when it is
// not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tourquote_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the catalog tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"Season", "Guide", "Hotel", "Vehicle", "Tour"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the catalog schema used by repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createTourTable := `
	CREATE TABLE IF NOT EXISTS Tour (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		basePrice DECIMAL(12,2) NOT NULL,
		isActive TINYINT(1) DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createVehicleTable := `
	CREATE TABLE IF NOT EXISTS Vehicle (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		capacity INT NOT NULL DEFAULT 4,
		pricePerDay DECIMAL(12,2) NOT NULL,
		driverCostPerDay DECIMAL(12,2) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createHotelTable := `
	CREATE TABLE IF NOT EXISTS Hotel (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		singleRoomPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		doubleRoomPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		tripleRoomPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		breakfastPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		lunchPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		dinnerPrice DECIMAL(12,2) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createGuideTable := `
	CREATE TABLE IF NOT EXISTS Guide (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		languages VARCHAR(255) NOT NULL DEFAULT '',
		pricePerDay DECIMAL(12,2) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createSeasonTable := `
	CREATE TABLE IF NOT EXISTS Season (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		startMonth INT NOT NULL,
		endMonth INT NOT NULL,
		priceMultiplier DECIMAL(6,3) NOT NULL DEFAULT 1.0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Tour", createTourTable},
		{"Vehicle", createVehicleTable},
		{"Hotel", createHotelTable},
		{"Guide", createGuideTable},
		{"Season", createSeasonTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
