package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration database. Tests are skipped when it is
// not reachable. TEST_MYSQL_DSN overrides the default local DSN.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/printworks_test?parseTime=true"
	}
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

// CleanupTestDB empties every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderCostItems", "Orders", "SpkSequences", "Fabrics", "PaperStock", "Customers"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repositories.
func SetupTestTables(t *testing.T, db *sql.DB) {
	for _, tbl := range Schema {
		_, err := db.Exec(tbl.Query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.Name, err)
		}
	}
}

type Table struct {
	Name  string
	Query string
}

var Schema = []Table{
	{"Customers", `
	CREATE TABLE IF NOT EXISTS Customers (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`},
	{"Fabrics", `
	CREATE TABLE IF NOT EXISTS Fabrics (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customerId INT NOT NULL,
		name VARCHAR(150) NOT NULL,
		composition VARCHAR(150) NOT NULL DEFAULT '',
		width DECIMAL(8,2) NOT NULL DEFAULT 0,
		availableLength DECIMAL(12,2) NOT NULL DEFAULT 0,
		isDeleted TINYINT(1) NOT NULL DEFAULT 0,
		INDEX idx_customer (customerId)
	)`},
	{"PaperStock", `
	CREATE TABLE IF NOT EXISTS PaperStock (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		gsm INT NOT NULL,
		width INT NOT NULL,
		INDEX idx_gsm (gsm)
	)`},
	{"Orders", `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		publicId CHAR(36) NOT NULL,
		spk VARCHAR(20) NOT NULL UNIQUE,
		customerId INT NOT NULL,
		productType VARCHAR(100) NOT NULL DEFAULT '',
		quantity DECIMAL(12,3) NOT NULL DEFAULT 0,
		unit VARCHAR(10) NOT NULL DEFAULT 'meter',
		fabricId INT,
		paperGsm INT,
		paperWidth INT,
		unitPrice DECIMAL(14,2) NOT NULL DEFAULT 0,
		discountType VARCHAR(12) NOT NULL DEFAULT 'none',
		discountValue DECIMAL(14,2) NOT NULL DEFAULT 0,
		taxEnabled TINYINT(1) NOT NULL DEFAULT 0,
		taxPercent DECIMAL(5,2) NOT NULL DEFAULT 0,
		totalPrice DECIMAL(14,2) NOT NULL DEFAULT 0,
		notes TEXT,
		priority TINYINT(1) NOT NULL DEFAULT 0,
		orderDate DATE NOT NULL,
		targetDate DATE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_customer (customerId)
	)`},
	{"OrderCostItems", `
	CREATE TABLE IF NOT EXISTS OrderCostItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		slot TINYINT NOT NULL,
		description VARCHAR(255) NOT NULL,
		price VARCHAR(32) NOT NULL DEFAULT '',
		quantity VARCHAR(32) NOT NULL DEFAULT '',
		total VARCHAR(32) NOT NULL DEFAULT '',
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		UNIQUE KEY uq_order_slot (orderId, slot)
	)`},
	{"SpkSequences", `
	CREATE TABLE IF NOT EXISTS SpkSequences (
		prefix CHAR(4) NOT NULL PRIMARY KEY,
		lastSequence INT NOT NULL,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`},
}
